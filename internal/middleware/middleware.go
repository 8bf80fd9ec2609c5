package middleware

import (
	"net/http"
	"strconv"

	"github.com/YasinSaleem/legal-doc-ai/internal/handlers"
	"github.com/YasinSaleem/legal-doc-ai/internal/metrics"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logging.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)

var GenerateHandler = Wrap(handlers.GenerateHandler)
var DownloadHandler = Wrap(handlers.DownloadHandler)
var ConfigHandler = Wrap(handlers.ConfigHandler)
var FieldsHandler = Wrap(handlers.FieldsHandler)
var RecordHandler = Wrap(handlers.RecordHandler)
var ListRecordsHandler = Wrap(handlers.ListRecordsHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logging.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		handleBadRequest(re)
		return re //stop if auth fails
	}
	re = rateLimiter(re)
	if re.badRequest.isBadRequest {
		handleBadRequest(re)
		return re //stop here if rate limit fails
	}

	return re
}
