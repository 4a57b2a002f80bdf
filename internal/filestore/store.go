// Package filestore owns the uploads/ directory tree and the lifecycle
// of every file in it: temp staging, canonical placement, replacement,
// deletion and zip bundling. Paths handed back are relative to the
// store root and are recorded verbatim in the owning records, so reads
// never have to guess where a file lives.
package filestore

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	PassportsDir = "passports"
	DocumentsDir = "documents"
	TempDir      = "documents/temp"
	ExcelDir     = "excel"
)

// documentFolders are the per-type folders under documents/ that hold
// permanent files; temp is deliberately not one of them.
var documentFolders = []string{"passport", "visa", "other"}

// Store is a local-disk file store rooted at one directory.
type Store struct {
	root string
}

// New creates the directory tree under root.
func New(root string) (*Store, error) {
	dirs := []string{PassportsDir, TempDir, ExcelDir}
	for _, folder := range documentFolders {
		dirs = append(dirs, path.Join(DocumentsDir, folder))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, err
		}
	}
	return &Store{root: root}, nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// Abs resolves a store-relative path to an absolute one.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Exists reports whether a store-relative path is a regular file.
func (s *Store) Exists(rel string) bool {
	info, err := os.Stat(s.Abs(rel))
	return err == nil && info.Mode().IsRegular()
}

// DocumentFolder maps a record's document type to its storage folder.
func DocumentFolder(documentType string) string {
	switch strings.ToLower(documentType) {
	case "passport":
		return "passport"
	case "visa":
		return "visa"
	}
	return "other"
}

// SaveTemp writes an in-flight upload under documents/temp with a
// unique name and returns its store-relative path.
func (s *Store) SaveTemp(src io.Reader, originalName string) (string, error) {
	rel := path.Join(TempDir, "temp_"+uuid.NewString()+extOf(originalName, ".pdf"))
	if err := s.write(rel, src); err != nil {
		return "", err
	}
	return rel, nil
}

// SaveExcel stages an uploaded spreadsheet under excel/.
func (s *Store) SaveExcel(src io.Reader, originalName string) (string, error) {
	rel := path.Join(ExcelDir, "import_"+uuid.NewString()+extOf(originalName, ".xlsx"))
	if err := s.write(rel, src); err != nil {
		return "", err
	}
	return rel, nil
}

// PromoteDocument relocates a temp upload to its canonical location,
// documents/<folder>/<passportNumber><ext>. Any previous file for the
// same passport number in that folder is removed first so replacement
// never leaves an orphan. Returns the canonical store-relative path.
func (s *Store) PromoteDocument(tempRel, documentType, passportNumber, originalName string) (string, error) {
	key := sanitize(passportNumber)
	if key == "" {
		return "", fmt.Errorf("invalid passport number %q", passportNumber)
	}

	folder := path.Join(DocumentsDir, DocumentFolder(documentType))
	if err := s.removeByKey(folder, key); err != nil {
		return "", err
	}

	rel := path.Join(folder, key+extOf(originalName, ".pdf"))
	if err := os.Rename(s.Abs(tempRel), s.Abs(rel)); err != nil {
		return "", err
	}
	return rel, nil
}

// SavePassportScan stores a guide passport scan as
// passports/<passportNumber><ext>, replacing any earlier scan for the
// same number. Returns the stored filename.
func (s *Store) SavePassportScan(src io.Reader, passportNumber, originalName string) (string, error) {
	key := sanitize(passportNumber)
	if key == "" {
		return "", fmt.Errorf("invalid passport number %q", passportNumber)
	}
	if err := s.removeByKey(PassportsDir, key); err != nil {
		return "", err
	}

	filename := key + extOf(originalName, "")
	if err := s.write(path.Join(PassportsDir, filename), src); err != nil {
		return "", err
	}
	return filename, nil
}

// PassportScanPath resolves a stored scan filename under passports/.
func (s *Store) PassportScanPath(filename string) string {
	return path.Join(PassportsDir, sanitize(filename))
}

// Remove deletes a store-relative file, reporting whether a file was
// actually removed. A missing file is not an error.
func (s *Store) Remove(rel string) bool {
	if rel == "" {
		return false
	}
	return os.Remove(s.Abs(rel)) == nil
}

// ClearDocuments deletes every file in the permanent document folders
// and returns how many were removed.
func (s *Store) ClearDocuments() (int, error) {
	deleted := 0
	for _, folder := range documentFolders {
		dir := s.Abs(path.Join(DocumentsDir, folder))
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return deleted, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
	return deleted, nil
}

// ZipDocuments streams every file in the permanent document folders
// into a single zip archive. The archive reflects disk state, not
// database state.
func (s *Store) ZipDocuments(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, folder := range documentFolders {
		dir := s.Abs(path.Join(DocumentsDir, folder))
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := s.zipFile(zw, folder, filepath.Join(dir, entry.Name()), entry.Name()); err != nil {
				return err
			}
		}
	}
	return zw.Close()
}

func (s *Store) zipFile(zw *zip.Writer, folder, abs, name string) error {
	src, err := os.Open(abs)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(path.Join(folder, name))
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}

// removeByKey deletes every file named <key>.* in folder, plus the
// bare <key> an extensionless upload is stored as. The glob stays
// dot-anchored so key "A1" never removes "A12.pdf".
func (s *Store) removeByKey(folder, key string) error {
	matches, err := filepath.Glob(filepath.Join(s.Abs(folder), key+".*"))
	if err != nil {
		return err
	}
	matches = append(matches, filepath.Join(s.Abs(folder), key))
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *Store) write(rel string, src io.Reader) error {
	dst, err := os.Create(s.Abs(rel))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(s.Abs(rel))
		return err
	}
	return dst.Close()
}

func extOf(name, fallback string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return fallback
	}
	return ext
}

// sanitize strips anything that could escape the target folder.
func sanitize(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
