package handlers

import (
	"bytes"
	"fmt"
	"path"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hajj-admin/internal/exporter"
	"hajj-admin/internal/filestore"
	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/internal/spreadsheet"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

type PassportVisaHandler struct {
	docs    *repositories.PassportVisaRepository
	store   *filestore.Store
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewPassportVisaHandler(docs *repositories.PassportVisaRepository, store *filestore.Store, log logger.Logger, m *metrics.Metrics) *PassportVisaHandler {
	return &PassportVisaHandler{docs: docs, store: store, log: log, metrics: m}
}

// GET /api/passport-visa
func (h *PassportVisaHandler) List(c *fiber.Ctx) error {
	docs, err := h.docs.FindAllSorted(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if docs == nil {
		docs = []models.PassportVisa{}
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"documents": docs,
		"stats":     ComputeDocumentStats(docs),
	})
}

// POST /api/passport-visa/import
func (h *PassportVisaHandler) Import(c *fiber.Ctx) error {
	start := time.Now()

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}
	if err := checkUpload(fh, spreadsheetMimes, maxSpreadsheetSize); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer f.Close()

	rel, err := h.store.SaveExcel(f, fh.Filename)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer h.store.Remove(rel)

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	rows, err := spreadsheet.ReadRows(src, fh.Filename)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("passport_visa_import").Inc()
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	docs, warnings := importer.PassportVisaRows(rows, time.Now())
	if len(docs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No valid rows found in the file")
	}

	count, err := h.docs.InsertMany(c.Context(), docs)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("passport_visa_import").Inc()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.metrics.RowsImported.WithLabelValues("passport_visa").Add(float64(count))
	h.metrics.ImportDuration.Observe(time.Since(start).Seconds())
	h.log.Infof("imported %d passport/visa records from %s (%d warnings)", count, fh.Filename, warnings)

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  fmt.Sprintf("%d records imported", count),
		"count":    count,
		"warnings": warnings,
	})
}

// GET /api/passport-visa/export
func (h *PassportVisaHandler) Export(c *fiber.Ctx) error {
	docs, err := h.docs.FindAllSorted(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(docs) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No documents to export")
	}

	wb, err := exporter.PassportVisaWorkbook(docs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("passport_visa_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// POST /api/passport-visa/upload-document
func (h *PassportVisaHandler) UploadDocument(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No document uploaded")
	}
	if err := checkUpload(fh, documentMimes, maxDocumentSize); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	id, err := primitive.ObjectIDFromHex(c.FormValue("pilgrimId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "pilgrimId is required")
	}

	doc, err := h.docs.FindByID(c.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fiber.NewError(fiber.StatusNotFound, "Pilgrim record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	tempRel, err := h.store.SaveTemp(src, fh.Filename)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("document_upload").Inc()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	rel, err := h.store.PromoteDocument(tempRel, doc.DocumentType, doc.PassportNumber, fh.Filename)
	if err != nil {
		h.store.Remove(tempRel)
		h.metrics.ErrorsCount.WithLabelValues("document_upload").Inc()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	details := models.FileDetails{
		Filename:     path.Base(rel),
		OriginalName: fh.Filename,
		Mimetype:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Path:         rel,
		UploadDate:   time.Now(),
	}
	if err := h.docs.AttachFile(c.Context(), id, details); err != nil {
		h.store.Remove(rel)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.metrics.DocumentsUploaded.Inc()
	h.log.Infof("document uploaded for passport %s (%s)", doc.PassportNumber, doc.DocumentType)

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Document uploaded successfully",
		"fileDetails": details,
	})
}

// GET /api/passport-visa/direct-pdf/:passportNumber
func (h *PassportVisaHandler) DirectPDF(c *fiber.Ctx) error {
	doc, err := h.docs.FindByPassportNumber(c.Context(), c.Params("passportNumber"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fiber.NewError(fiber.StatusNotFound, "Document not found in database")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if doc.FileDetails == nil {
		return fiber.NewError(fiber.StatusNotFound, "Document not found in database")
	}
	return h.serveFile(c, doc)
}

// GET /api/passport-visa/document/:id
func (h *PassportVisaHandler) GetDocument(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, errInvalidID.Error())
	}
	doc, err := h.docs.FindByID(c.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "document": doc})
}

// GET /api/passport-visa/document/:id/file
func (h *PassportVisaHandler) GetDocumentFile(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, errInvalidID.Error())
	}
	doc, err := h.docs.FindByID(c.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if doc.FileDetails == nil {
		return fiber.NewError(fiber.StatusNotFound, "No file attached to this document")
	}
	return h.serveFile(c, doc)
}

// GET /api/passport-visa/download-zip
func (h *PassportVisaHandler) DownloadZip(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.store.ZipDocuments(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("pilgrim_documents_%s.zip", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// DELETE /api/passport-visa/all
func (h *PassportVisaHandler) DeleteAll(c *fiber.Ctx) error {
	deleted, err := h.docs.DeleteAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filesDeleted, err := h.store.ClearDocuments()
	if err != nil {
		h.log.Errorf("clearing document files: %v", err)
	}

	h.log.Infof("deleted all passport/visa records (%d records, %d files)", deleted, filesDeleted)
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "All records deleted",
		"deletedCount": deleted,
		"filesDeleted": filesDeleted,
	})
}

// DELETE /api/passport-visa/:id
func (h *PassportVisaHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, errInvalidID.Error())
	}

	doc, err := h.docs.FindByID(c.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.docs.Delete(c.Context(), id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	fileDeleted := false
	if doc.FileDetails != nil {
		fileDeleted = h.store.Remove(doc.FileDetails.Path)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Document deleted",
		"fileDeleted": fileDeleted,
	})
}

// serveFile streams the stored file at the record's canonical path.
// The record existing without the file on disk is a distinct failure
// from the record being absent, and is reported as such.
func (h *PassportVisaHandler) serveFile(c *fiber.Ctx, doc models.PassportVisa) error {
	if !h.store.Exists(doc.FileDetails.Path) {
		return fiber.NewError(fiber.StatusNotFound, "File not found on server")
	}
	c.Set(fiber.HeaderContentType, contentTypeByExt(doc.FileDetails.Path))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", doc.FileDetails.Filename))
	return c.SendFile(h.store.Abs(doc.FileDetails.Path))
}
