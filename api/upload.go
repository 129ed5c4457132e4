package api

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/meikuraledutech/skillgraph"
	"go.uber.org/zap"
)

// uploadResume stores the multipart "resume" file in the upload directory and
// records its metadata. An optional "profileId" form value links it to a profile.
// Nothing is left on disk or in the store when any step fails.
func (h *handlers) uploadResume(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	profileID := c.FormValue("profileId")
	if profileID != "" {
		p, err := h.profiles.GetProfile(c.Context(), profileID)
		if err != nil {
			return h.serverError(c, "get profile", err)
		}
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
	}

	name := uuid.NewString() + storedExt(fh.Filename)
	path := filepath.Join(h.uploadDir, name)
	if err := c.SaveFile(fh, path); err != nil {
		h.removeFile(path)
		return h.serverError(c, "save resume", err)
	}

	mimeType := fh.Header.Get(fiber.HeaderContentType)
	if mimeType == "" {
		mimeType = fiber.MIMEOctetStream
	}
	r := &skillgraph.Resume{
		OriginalName: filepath.Base(fh.Filename),
		FilePath:     "/uploads/" + name,
		MimeType:     mimeType,
		Size:         fh.Size,
	}
	if _, err := h.profiles.CreateResume(c.Context(), r); err != nil {
		h.removeFile(path)
		return h.serverError(c, "create resume", err)
	}

	if profileID != "" {
		err := h.profiles.AttachResume(c.Context(), profileID, r.ID)
		if err != nil {
			h.removeFile(path)
			if derr := h.profiles.DeleteResume(c.Context(), r.ID); derr != nil {
				h.log.Error("delete orphaned resume", zap.String("resumeId", r.ID), zap.Error(derr))
			}
		}
		// The profile can disappear between the check above and the link.
		if errors.Is(err, skillgraph.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		if err != nil {
			return h.serverError(c, "attach resume", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File uploaded and saved successfully",
		"file":    r,
	})
}

func (h *handlers) getResume(c fiber.Ctx) error {
	r, err := h.profiles.GetResume(c.Context(), c.Params("id"))
	if err != nil {
		return h.serverError(c, "get resume", err)
	}
	if r == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	return c.JSON(r)
}

func (h *handlers) removeFile(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		h.log.Error("remove uploaded file", zap.String("path", path), zap.Error(err))
	}
}

// storedExt keeps a short alphanumeric extension from the client filename.
func storedExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
