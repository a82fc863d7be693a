package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"tax-engine/internal/engine"
	"tax-engine/internal/model"
	"tax-engine/internal/schedule"
)

// NewCalculationHandler returns the request handler for POST /calculate.
// The schedule set is validated at startup and shared read-only, so the
// handler is safe for concurrent requests.
func NewCalculationHandler(set schedule.Set) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if string(ctx.Path()) != "/calculate" {
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
			return
		}
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req model.CalculationRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}

		resp := engine.Process(&req, set)

		ctx.SetContentType("application/json")
		body, err := json.Marshal(resp)
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
			return
		}
		ctx.SetBody(body)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
