package in

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	hclog "github.com/hashicorp/go-hclog"

	"jsoncheck/internal/modules/check/dto"
	checkin "jsoncheck/internal/modules/check/port/in"
	apperrors "jsoncheck/internal/platform/errors"
)

const (
	MsgInvalidInputJSON = "Invalid input JSON"

	SuggestionInvalidInput = "Plugin expects valid JSON input via stdin"
	SuggestionCommands     = "Supported commands: check"
)

// Request is the message the host writes to stdin.
type Request struct {
	Command string         `json:"command"`
	Files   []string       `json:"files"`
	Config  map[string]any `json:"config,omitempty"`
}

// Response is the single message written to stdout.
type Response struct {
	Success    bool     `json:"success"`
	Error      string   `json:"error,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	Modified   []string `json:"modified,omitempty"`
	Output     string   `json:"output,omitempty"`
}

func (r Response) ExitCode() int {
	if r.Success {
		return 0
	}
	return 1
}

func Failure(message, suggestion string) Response {
	return Response{Error: message, Suggestion: suggestion}
}

// InvalidInput is the response to a payload that is not a request object.
func InvalidInput() Response {
	return Failure(MsgInvalidInputJSON, SuggestionInvalidInput)
}

// DecodeRequest reads the whole payload and decodes it as a JSON object.
// Keys match exactly; unknown keys are ignored. A command that is not a
// string is kept as its JSON text so it can be echoed back, and a config
// that is not an object is dropped.
func DecodeRequest(r io.Reader) (Request, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("%w: read request: %v", apperrors.ErrInvalidInput, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return Request{}, fmt.Errorf("%w: decode request: %v", apperrors.ErrInvalidInput, err)
	}
	if fields == nil {
		return Request{}, fmt.Errorf("%w: request must be a JSON object", apperrors.ErrInvalidInput)
	}

	req := Request{}
	if err := decodeField(fields, "command", &req.Command); err != nil {
		req.Command = compactJSON(fields["command"])
	}
	if err := decodeField(fields, "files", &req.Files); err != nil {
		return Request{}, err
	}
	if err := decodeField(fields, "config", &req.Config); err != nil {
		req.Config = nil
	}
	return req, nil
}

func decodeField(fields map[string]json.RawMessage, key string, target any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: field %q: %v", apperrors.ErrInvalidInput, key, err)
	}
	return nil
}

func compactJSON(raw json.RawMessage) string {
	buf := bytes.Buffer{}
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// WriteResponse encodes resp as one JSON line and returns the exit code the
// process should end with.
func WriteResponse(w io.Writer, resp Response) int {
	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return 1
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return 1
	}
	return resp.ExitCode()
}

type ProtocolHandler struct {
	usecase checkin.Usecase
	logger  hclog.Logger
}

func NewProtocolHandler(usecase checkin.Usecase, logger hclog.Logger) ProtocolHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return ProtocolHandler{usecase: usecase, logger: logger.Named("protocol")}
}

// Respond runs a decoded request and returns the single response to write.
func (h ProtocolHandler) Respond(ctx context.Context, req Request) Response {
	h.logger.Debug("request received", "command", req.Command, "files", len(req.Files))

	result, err := h.usecase.Check(ctx, dto.CheckInput{Command: req.Command, Files: req.Files, Config: req.Config})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCommand) {
			return Failure("Unknown command: "+req.Command, SuggestionCommands)
		}
		h.logger.Error("check failed", "error", err)
		return Failure(err.Error(), "Report this failure to the plugin maintainers")
	}
	return FromOutput(result)
}

func FromOutput(out dto.CheckOutput) Response {
	return Response{
		Success:    out.Success,
		Error:      out.Error,
		Suggestion: out.Suggestion,
		Modified:   out.Modified,
		Output:     out.Output,
	}
}
