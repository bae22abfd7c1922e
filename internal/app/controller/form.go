package controller

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
)

// imageFromForm pulls the optional "image" file out of a multipart
// form. Returns nil when no file was attached. The caller must invoke
// the returned closer once the service call is done.
func imageFromForm(c *gin.Context) (*service.ImageUpload, func(), error) {
	header, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}

	return &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentTypeOf(header),
		Size:        header.Size,
		Reader:      file,
	}, func() { file.Close() }, nil
}

func contentTypeOf(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}

// respondFieldErrors writes a field-level validation response when err
// is one. Reports whether it handled the error.
func respondFieldErrors(c *gin.Context, err error) bool {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		apperrors.RespondWithValidationError(c, fieldErrs)
		return true
	}
	return false
}
