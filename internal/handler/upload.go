package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// currentPrincipal fetches the authenticated principal, answering 401 if
// the auth middleware did not run. The caller returns on !ok.
func currentPrincipal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		HandleError(c, errorx.New(errorx.CodeUnauthenticated, "authentication required"))
	}
	return principal, ok
}

// readUpload pulls one multipart file field into memory and sniffs its
// MIME type from the content rather than trusting the client header.
// The size cap is checked before the body is read.
func readUpload(c *gin.Context, field string) (data []byte, mimeType, name string, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", "", errorx.Newf(errorx.CodeInvalidArgument, "missing file field %q", field)
	}
	if fileHeader.Size > constants.PROOF_MAX_SIZE {
		return nil, "", "", errorx.New(errorx.CodeInvalidArgument, "file exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", "", errorx.Wrap(err, errorx.CodeInvalidArgument, "unreadable upload")
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", "", errorx.Wrap(err, errorx.CodeInvalidArgument, "unreadable upload")
	}
	return data, http.DetectContentType(data), fileHeader.Filename, nil
}
