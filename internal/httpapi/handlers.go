package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-ascii/internal/ascii"
	apperr "github.com/ironsheep/image-ascii/internal/errors"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// ErrorCodeHeader carries the machine-readable code of a failed request.
const ErrorCodeHeader = "X-Error-Code"

// Messages shown to clients. Conversion failures are not told apart here.
const (
	msgProcessingFailed = "Image processing failed."
	msgInvalidBody      = "Invalid request body."
	msgBodyTooLarge     = "Request body too large."
)

// ConvertRequest is the body of POST /api/ascii.
type ConvertRequest struct {
	// Image is a data URI; the base64 payload follows the first comma.
	Image string `json:"image"`

	// Rows and Cols are strings or numbers holding positive integers.
	Rows any `json:"rows"`
	Cols any `json:"cols"`
}

// ConvertResponse is the success body of POST /api/ascii.
type ConvertResponse struct {
	ASCII string `json:"ascii"`
	RLE   string `json:"rle"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleConvert runs the conversion pipeline for one request.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	var req ConvertRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("request body too large", "limit", tooLarge.Limit)
			writeError(w, http.StatusRequestEntityTooLarge, apperr.ErrCodeInvalidRequest, msgBodyTooLarge)
			return
		}
		logger.Warn("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, apperr.ErrCodeInvalidRequest, msgInvalidBody)
		return
	}

	res, err := s.convert(req)
	if err != nil {
		code := apperr.GetCode(err)
		logger.Error("image processing failed", "code", code, "err", err)
		writeError(w, statusFor(code), code, msgProcessingFailed)
		return
	}

	logger.Info("converted image", "rows", res.Rows, "cols", res.Cols)
	writeJSON(w, http.StatusOK, ConvertResponse{ASCII: res.ASCII, RLE: res.RLE})
}

// convert validates the request fields and runs the core pipeline.
func (s *Server) convert(req ConvertRequest) (*ascii.Result, error) {
	rows, err := ascii.ParseDimension("rows", req.Rows, s.conv.MaxDimension)
	if err != nil {
		return nil, err
	}
	cols, err := ascii.ParseDimension("cols", req.Cols, s.conv.MaxDimension)
	if err != nil {
		return nil, err
	}

	data, err := imaging.DecodeDataURI(req.Image)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "invalid image payload")
	}
	return ascii.Convert(data, rows, cols, s.conv)
}

// statusFor maps an error code to an HTTP status. Bad input is the client's
// fault; a wrong-sized buffer or anything unclassified is ours.
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidDimensions, apperr.ErrCodeDecode, apperr.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, code apperr.Code, msg string) {
	if code != "" {
		w.Header().Set(ErrorCodeHeader, string(code))
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"error":"Internal error."}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
