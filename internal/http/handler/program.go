package handler

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"programboard/internal/qr"
	"programboard/internal/service"
)

// UploadObserver is notified about accepted uploads, for metrics. May be nil.
type UploadObserver func(sizeBytes int64, created bool)

// UploadProgram accepts the multipart upload form (file field "programFile"
// plus "programDate" and "language"). Content type and size are checked at
// intake, before the file is staged; everything else is the service's job.
func UploadProgram(svc service.ProgramService, uploadDir string, maxSizeBytes int64, observe UploadObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("programFile")
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "No file uploaded")
		}

		if !service.MimeTypeAllowed(fh.Header.Get(fiber.HeaderContentType)) {
			return apiError(c, fiber.StatusBadRequest, "Invalid file type. Only PDF and image files are allowed.")
		}
		if fh.Size > maxSizeBytes {
			return apiError(c, fiber.StatusBadRequest, "File too large. Maximum size is 10MB.")
		}

		// Stage the upload inside the uploads dir so promotion is a same-
		// filesystem rename.
		ext := filepath.Ext(fh.Filename)
		tempPath := filepath.Join(uploadDir, fmt.Sprintf("temp_%d%s", time.Now().UnixNano(), ext))
		if err := c.SaveFile(fh, tempPath); err != nil {
			log.Printf("failed to stage upload: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "Upload failed. Please try again.")
		}

		res, err := svc.Upload(c.UserContext(), c.FormValue("programDate"), c.FormValue("language"), &service.UploadInput{
			TempPath:     tempPath,
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get(fiber.HeaderContentType),
			SizeBytes:    fh.Size,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingMetadata):
				return apiError(c, fiber.StatusBadRequest, "Date and language are required")
			case errors.Is(err, service.ErrInvalidLanguage):
				return apiError(c, fiber.StatusBadRequest, "Invalid language")
			case errors.Is(err, service.ErrInvalidFileType):
				return apiError(c, fiber.StatusBadRequest, "Invalid file type. Only PDF and image files are allowed.")
			default:
				log.Printf("upload failed: %v", err)
				return apiError(c, fiber.StatusInternalServerError, "Upload failed. Please try again.")
			}
		}

		if observe != nil {
			observe(fh.Size, res.Created)
		}

		if res.Created {
			return apiSuccess(c, "Program uploaded successfully")
		}
		return apiSuccess(c, "Program updated successfully")
	}
}

// AdminPrograms returns every catalog entry for the dashboard.
func AdminPrograms(svc service.ProgramService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.AdminList(c.UserContext())
		if err != nil {
			log.Printf("admin list failed: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "Database error")
		}
		return c.JSON(items)
	}
}

// DeleteProgram removes a catalog entry and its stored file.
func DeleteProgram(svc service.ProgramService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid program id")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return apiError(c, fiber.StatusNotFound, "Program not found")
			}
			log.Printf("delete program %d failed: %v", id, err)
			return apiError(c, fiber.StatusInternalServerError, "Failed to delete program")
		}
		return apiSuccess(c, "Program deleted successfully")
	}
}

// PublicPrograms returns today's and tomorrow's entries grouped by date and
// language. The window is computed in UTC from the server clock.
func PublicPrograms(svc service.ProgramService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		grouped, err := svc.PublicPrograms(c.UserContext(), time.Now().UTC())
		if err != nil {
			log.Printf("public programs failed: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "Database error")
		}
		return c.JSON(grouped)
	}
}

// QRCode returns a data-URL QR code pointing at the public site.
func QRCode(baseURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dataURL, err := qr.DataURL(strings.TrimSuffix(baseURL, "/"))
		if err != nil {
			log.Printf("qr code generation failed: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "Failed to generate QR code")
		}
		return c.JSON(fiber.Map{"qrCode": dataURL})
	}
}
