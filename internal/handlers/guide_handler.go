package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"hajj-admin/internal/filestore"
	"hajj-admin/internal/middleware"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

type GuideHandler struct {
	guides  *repositories.GuideRepository
	store   *filestore.Store
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewGuideHandler(guides *repositories.GuideRepository, store *filestore.Store, log logger.Logger, m *metrics.Metrics) *GuideHandler {
	return &GuideHandler{guides: guides, store: store, log: log, metrics: m}
}

// GET /api/guides
func (h *GuideHandler) List(c *fiber.Ctx) error {
	guides, err := h.guides.FindAll(c.Context())
	if err != nil {
		h.log.Error("fetch guides failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch guides")
	}
	if guides == nil {
		guides = []models.Guide{}
	}
	return c.JSON(fiber.Map{"guides": guides})
}

// GET /api/guides/recent
func (h *GuideHandler) Recent(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 5))
	guides, err := h.guides.FindRecent(c.Context(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch recent guides")
	}
	return c.JSON(guides)
}

// POST /api/guides
func (h *GuideHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if name == "" || email == "" || password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and password are required")
	}

	if _, err := h.guides.FindByEmail(c.Context(), email); err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Guide with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	creator, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token is not valid")
	}

	guide := models.Guide{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		PassportID:   orDefault(c.FormValue("passportNumber"), "No Passport Photo"),
		NusukEmail:   c.FormValue("nusukEmail"),
		Phone:        c.FormValue("mainPhone"),
		Mobile:       c.FormValue("hajjPhone"),
		CreatedBy:    creator,
		CreatedAt:    time.Now(),
	}

	if filename, err := h.savePassportScan(c); err != nil {
		return err
	} else if filename != "" {
		guide.PassportFile = filename
	}

	id, err := h.guides.Insert(c.Context(), guide)
	if err != nil {
		h.log.Error("create guide failed", "email", email, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	guide.ID = id

	return c.Status(fiber.StatusCreated).JSON(guide)
}

// PUT /api/guides/:id
func (h *GuideHandler) Update(c *fiber.Ctx) error {
	guide, status, err := h.ownedGuide(c)
	if err != nil {
		return fiber.NewError(status, err.Error())
	}

	guide.Name = c.FormValue("name", guide.Name)
	guide.PassportID = orDefault(c.FormValue("passportNumber"), "No Passport Photo")
	guide.NusukEmail = c.FormValue("nusukEmail")
	guide.Phone = c.FormValue("mainPhone")
	guide.Mobile = c.FormValue("hajjPhone")

	if filename, err := h.savePassportScan(c); err != nil {
		return err
	} else if filename != "" {
		// Replacing: the old scan must not linger on disk.
		if guide.PassportFile != "" && guide.PassportFile != filename {
			h.store.Remove(h.store.PassportScanPath(guide.PassportFile))
		}
		guide.PassportFile = filename
	}

	if err := h.guides.Update(c.Context(), guide.ID, guide); err != nil {
		h.log.Error("update guide failed", "guide", guide.ID.Hex(), "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(guide)
}

// DELETE /api/guides/:id
func (h *GuideHandler) Delete(c *fiber.Ctx) error {
	guide, status, err := h.ownedGuide(c)
	if err != nil {
		return fiber.NewError(status, err.Error())
	}

	if guide.PassportFile != "" {
		h.store.Remove(h.store.PassportScanPath(guide.PassportFile))
	}
	if err := h.guides.Delete(c.Context(), guide.ID); err != nil {
		h.log.Error("delete guide failed", "guide", guide.ID.Hex(), "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"message": "Guide deleted successfully"})
}

// DELETE /api/guides/:id/passport
func (h *GuideHandler) DeletePassport(c *fiber.Ctx) error {
	guide, status, err := h.ownedGuide(c)
	if err != nil {
		return fiber.NewError(status, err.Error())
	}
	if guide.PassportFile == "" {
		return fiber.NewError(fiber.StatusBadRequest, "No passport file to delete")
	}

	h.store.Remove(h.store.PassportScanPath(guide.PassportFile))
	guide.PassportFile = ""
	if err := h.guides.Update(c.Context(), guide.ID, guide); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"message": "Passport file deleted successfully"})
}

// GET /api/guides/passport/:filename and /view-passport/:filename
func (h *GuideHandler) ServePassport(c *fiber.Ctx) error {
	filename := c.Params("filename")
	rel := h.store.PassportScanPath(filename)
	if !h.store.Exists(rel) {
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	}

	c.Set(fiber.HeaderContentType, contentTypeByExt(filename))
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.SendFile(h.store.Abs(rel))
}

// savePassportScan stores an optional multipart passport scan and
// returns its filename, or "" when none was sent.
func (h *GuideHandler) savePassportScan(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("passportFile")
	if err != nil {
		return "", nil
	}
	if err := checkUpload(fh, passportScanMimes, maxPassportScanSize); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	defer src.Close()

	key := c.FormValue("passportNumber")
	if key == "" {
		key = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	filename, err := h.store.SavePassportScan(src, key, fh.Filename)
	if err != nil {
		h.log.Error("store passport scan failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("passport_scan").Inc()
		return "", fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	h.metrics.DocumentsUploaded.Inc()
	return filename, nil
}

// ownedGuide loads the :id guide and enforces creator-only access.
func (h *GuideHandler) ownedGuide(c *fiber.Ctx) (models.Guide, int, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.Guide{}, fiber.StatusBadRequest, errInvalidID
	}
	guide, err := h.guides.FindByID(c.Context(), id)
	if err != nil {
		return models.Guide{}, fiber.StatusNotFound, errGuideNotFound
	}
	if guide.CreatedBy.Hex() != middleware.UserID(c) {
		return models.Guide{}, fiber.StatusForbidden, errNotGuideOwner
	}
	return guide, fiber.StatusOK, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
