// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"cipher-backend/crypto"
	"cipher-backend/metrics"
	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

const (
	operationEncrypt = "encrypt"
	operationDecrypt = "decrypt"
)

type CipherHandler struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewCipherHandler(m *metrics.Metrics, logger *slog.Logger) *CipherHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CipherHandler{
		metrics: m,
		logger:  logger,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.handleCipher(c, operationEncrypt)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.handleCipher(c, operationDecrypt)
}

func (h *CipherHandler) handleCipher(c *gin.Context, operation string) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(statusForBindError(err), models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	cipher, err := crypto.New(req.Key, req.Shift)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidKey) {
			h.metrics.RecordInvalidKey()
		}
		h.logger.Debug("rejected cipher request", "operation", operation, "error", err)
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	mode := cipherMode(cipher)
	var result string
	if operation == operationEncrypt {
		result = cipher.Encrypt(req.Text)
	} else {
		result = cipher.Decrypt(req.Text)
	}
	h.metrics.RecordOperation(operation, mode, utf8.RuneCountInString(req.Text))

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Result:  result,
		Mode:    mode,
	})
}

func (h *CipherHandler) ValidateKey(c *gin.Context) {
	var req models.ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(statusForBindError(err), models.ValidateKeyResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	cipher, err := crypto.NewSubstitutionCipher(req.Key)
	if err != nil {
		h.metrics.RecordInvalidKey()
		c.JSON(http.StatusBadRequest, models.ValidateKeyResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ValidateKeyResponse{
		Success:       true,
		NormalizedKey: cipher.Key(),
		Shifts:        cipher.Shifts(),
	})
}

func cipherMode(cipher *crypto.SubstitutionCipher) string {
	if cipher.IsMonoalphabetic() {
		return models.ModeMonoalphabetic
	}
	return models.ModePolyalphabetic
}

func statusForBindError(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
