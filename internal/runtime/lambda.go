package runtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isometry/delay-responder/internal/models"
	"github.com/pkg/errors"
)

// Lambda payload formats.
const (
	PayloadAPIGatewayV1 = "api-gateway-v1"
	PayloadAPIGatewayV2 = "api-gateway-v2"
	PayloadLambdaURL    = "lambda-url"
)

// Lambda is the Lambda handler for HTTP-shaped invocations.
// Request failures are reported through the status code; only undecodable payloads return an error.
// Paths other than the configured route get 404, as in the HTTP runtime.
func (r *Runtime) Lambda(ctx context.Context, payload json.RawMessage) (any, error) {
	r.logger.Info("received API Gateway request", slog.String("payloadType", r.payloadType))

	req, err := r.decodeLambdaRequest(payload)
	if err != nil {
		r.logger.Error("failed to decode lambda payload", slog.Any("error", err))
		return nil, err
	}

	if req.Path != r.path {
		r.logger.Warn("no route for path", slog.String("path", req.Path))
		return r.lambdaResponse(models.Response{StatusCode: http.StatusNotFound, Body: "404 page not found\n"}), nil
	}

	result, err := r.Respond(ctx, req)
	if err != nil {
		r.logger.Warn("request failed", slog.Int("status", result.StatusCode), slog.Any("error", err))
		if result.Body == "" {
			result.Body = err.Error() + "\n"
		}
	}
	return r.lambdaResponse(result), nil
}

func (r *Runtime) lambdaResponse(result models.Response) any {
	switch r.payloadType {
	case PayloadAPIGatewayV1:
		return events.APIGatewayProxyResponse{
			Body:       result.Body,
			Headers:    result.Headers,
			StatusCode: result.StatusCode,
		}
	case PayloadAPIGatewayV2:
		return events.APIGatewayV2HTTPResponse{
			Body:       result.Body,
			Headers:    result.Headers,
			StatusCode: result.StatusCode,
		}
	default:
		return events.LambdaFunctionURLResponse{
			Body:       result.Body,
			Headers:    result.Headers,
			StatusCode: result.StatusCode,
		}
	}
}

// LambdaForEvent is the Lambda handler for EventBridge events. The event detail is handled as a POST body.
func (r *Runtime) LambdaForEvent(ctx context.Context, event models.Event) (models.Response, error) {
	r.logger.Info("received event", slog.String("id", event.ID), slog.String("source", event.Source), slog.String("detailType", event.DetailType))

	result, err := r.Respond(ctx, models.Request{Method: http.MethodPost, Body: string(event.Detail)})
	r.logger.Info("handled event", slog.Int("status", result.StatusCode), slog.Any("error", err))
	return result, err
}

func (r *Runtime) decodeLambdaRequest(payload json.RawMessage) (models.Request, error) {
	var (
		req             models.Request
		headers         map[string]string
		isBase64Encoded bool
	)

	switch r.payloadType {
	case PayloadAPIGatewayV1:
		var e events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return req, errors.Wrap(err, "failed to decode API Gateway v1 request")
		}
		req = models.Request{Method: e.HTTPMethod, Path: e.Path, Body: e.Body}
		headers, isBase64Encoded = e.Headers, e.IsBase64Encoded
	case PayloadAPIGatewayV2:
		var e events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return req, errors.Wrap(err, "failed to decode API Gateway v2 request")
		}
		req = models.Request{Method: e.RequestContext.HTTP.Method, Path: e.RawPath, Body: e.Body}
		headers, isBase64Encoded = e.Headers, e.IsBase64Encoded
	case PayloadLambdaURL:
		var e events.LambdaFunctionURLRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return req, errors.Wrap(err, "failed to decode Lambda function URL request")
		}
		req = models.Request{Method: e.RequestContext.HTTP.Method, Path: e.RawPath, Body: e.Body}
		headers, isBase64Encoded = e.Headers, e.IsBase64Encoded
	default:
		return req, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}

	// Lower-case incoming headers for compatibility purposes
	req.Headers = make(map[string]string, len(headers))
	for k, v := range headers {
		req.Headers[strings.ToLower(k)] = v
	}

	if isBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return req, errors.Wrap(err, "failed to decode base64 body")
		}
		req.Body = string(decoded)
	}
	return req, nil
}
