package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// unexpectedPreviewLength is how much of an unparseable body is echoed back.
const unexpectedPreviewLength = 120

// BackendError is a user-facing failure reported by the auth backend.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  fieldErrors `json:"errors"`
	Data    *struct {
		User        *User  `json:"user"`
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

// fieldErrors keeps backend validation messages in field order.
type fieldErrors struct {
	present  bool
	messages []string
}

func (f *fieldErrors) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '{':
		dec := json.NewDecoder(bytes.NewReader(data))
		if _, err := dec.Token(); err != nil {
			return err
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return err
			}
			var value json.RawMessage
			if err := dec.Decode(&value); err != nil {
				return err
			}
			f.messages = append(f.messages, flattenMessages(value)...)
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		for _, item := range items {
			f.messages = append(f.messages, flattenMessages(item)...)
		}
	default:
		return nil
	}
	f.present = true
	return nil
}

func flattenMessages(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, item := range list {
			var s string
			if err := json.Unmarshal(item, &s); err == nil {
				out = append(out, s)
				continue
			}
			out = append(out, string(bytes.TrimSpace(item)))
		}
		return out
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return []string{string(raw)}
}

// decodeAuthResponse interprets an auth endpoint response. ok is the HTTP
// success of the response; fallback is the message used when the backend
// gives none.
func decodeAuthResponse(status int, ok bool, body []byte, fallback string) (AuthResult, error) {
	var env envelope
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		if !json.Valid(trimmed) {
			return AuthResult{}, &BackendError{
				StatusCode: status,
				Message:    "Unexpected response from server: " + preview(string(body)),
			}
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			env = envelope{}
		}
	}

	if !ok || !env.Success {
		return AuthResult{}, &BackendError{StatusCode: status, Message: failureMessage(env, fallback)}
	}
	if env.Data == nil || env.Data.User == nil {
		return AuthResult{}, &BackendError{StatusCode: status, Message: fallback}
	}
	return AuthResult{User: *env.Data.User, Token: strings.TrimSpace(env.Data.AccessToken)}, nil
}

func failureMessage(env envelope, fallback string) string {
	message := strings.TrimSpace(env.Message)
	if env.Errors.present {
		joined := strings.Join(env.Errors.messages, "\n")
		if message != "" {
			return strings.TrimRight(fmt.Sprintf("%s\n%s", message, joined), "\n")
		}
		if joined != "" {
			return joined
		}
		return fallback
	}
	if message != "" {
		return message
	}
	return fallback
}

func preview(body string) string {
	runes := []rune(body)
	if len(runes) > unexpectedPreviewLength {
		runes = runes[:unexpectedPreviewLength]
	}
	return string(runes)
}
