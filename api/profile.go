package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/skillgraph"
	"go.uber.org/zap"
)

func (h *handlers) createProfile(c fiber.Ctx) error {
	var p skillgraph.Profile
	if err := c.Bind().JSON(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	// Server-assigned. Resumes are linked only through /api/upload.
	p.ID = ""
	p.ResumeID = ""
	p.Normalize()
	if err := p.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.profiles.CreateProfile(c.Context(), &p)
	if err != nil {
		return h.serverError(c, "create profile", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Profile saved successfully!",
		"id":      id,
	})
}

func (h *handlers) listProfiles(c fiber.Ctx) error {
	profiles, err := h.profiles.ListProfiles(c.Context())
	if err != nil {
		return h.serverError(c, "list profiles", err)
	}
	return c.JSON(profiles)
}

func (h *handlers) getProfile(c fiber.Ctx) error {
	p, err := h.profiles.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return h.serverError(c, "get profile", err)
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
	}
	return c.JSON(p)
}

func (h *handlers) deleteProfile(c fiber.Ctx) error {
	err := h.profiles.DeleteProfile(c.Context(), c.Params("id"))
	if errors.Is(err, skillgraph.ErrProfileNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
	}
	if err != nil {
		return h.serverError(c, "delete profile", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// serverError logs err and answers with a generic 500 body.
func (h *handlers) serverError(c fiber.Ctx, op string, err error) error {
	h.log.Error(op, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
}
