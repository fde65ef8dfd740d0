package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"wizmon"
	"wizmon/calc"
)

// maxRequestBytes bounds the size of an evaluate request body
const maxRequestBytes = 1 << 20

// Server dependencies for HTTP Server functions
type Server struct {
	Service calc.Service
	router  http.ServeMux
}

func NewServer(s calc.Service) *Server {
	server := &Server{
		Service: s,
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/evaluate", s.evaluate())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// evaluate produces HTTP handler for wizard money expressions
func (s *Server) evaluate() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Op      wizmon.Op          `json:"op"`
		Money   wizmon.WizardMoney `json:"money"`
		Operand json.RawMessage    `json:"operand"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Result wizmon.WizardMoney `json:"result"`
		Value  json.Number        `json:"value"`
		Repr   string             `json:"repr"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			rw.Header().Set("Allow", http.MethodPost)
			writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxRequestBytes))
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(body, &request)
		if err != nil {
			writeError(rw, http.StatusBadRequest, decodeErrorMessage(err))
			return
		}

		operand, err := decodeOperand(request.Operand)
		if err != nil {
			writeError(rw, http.StatusBadRequest, decodeErrorMessage(err))
			return
		}

		result, err := s.Service.Evaluate(r.Context(), calc.Expression{
			Op:      request.Op,
			Money:   request.Money,
			Operand: operand,
		})
		if err != nil {
			writeError(rw, http.StatusBadRequest, evaluateErrorMessage(err))
			return
		}

		response := response{
			Result: result.Money,
			Value:  json.Number(result.Value.String()),
			Repr:   result.Money.String(),
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			writeError(rw, http.StatusInternalServerError, "failed json encoding")
			return
		}
	}
}

// decodeOperand turns the raw operand into what wizmon.WizardMoney.Apply
// expects: nil when absent, a WizardMoney for objects, a decimal.Decimal for
// numbers. Numbers must pass wizmon.ParseCount. Any other JSON value is passed
// through for Apply to reject.
func decodeOperand(raw json.RawMessage) (interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var money wizmon.WizardMoney
		if err := json.Unmarshal(trimmed, &money); err != nil {
			return nil, err
		}
		return money, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if n, ok := v.(json.Number); ok {
		return wizmon.ParseCount(n.String())
	}
	return v, nil
}

func decodeErrorMessage(err error) string {
	if errors.Is(err, wizmon.ErrInvalidOperand) {
		return "invalid operand type"
	}
	return "invalid json"
}

func evaluateErrorMessage(err error) string {
	switch {
	case errors.Is(err, wizmon.ErrInvalidOperand):
		return "invalid operand type"
	case errors.Is(err, wizmon.ErrDivisionByZero):
		return "division by zero"
	case errors.Is(err, wizmon.ErrUnknownOp):
		return "unknown operation"
	default:
		return "failed evaluation"
	}
}

func writeError(rw http.ResponseWriter, status int, msg string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(struct {
		Error string `json:"error"`
	}{msg})
}
