package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/adapter"
	"github.com/YasinSaleem/legal-doc-ai/internal/adapter/utils"
	"github.com/YasinSaleem/legal-doc-ai/internal/api"
	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/pipeline"
	"github.com/YasinSaleem/legal-doc-ai/internal/scenario"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func GetHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok", Service: "legal-doc-ai"})
}

// GenerateHandler godoc
// @Summary      Generate a legal document
// @Description  Accepts a scenario (inline text or uploaded file), runs the full generation pipeline, and returns the document metadata with a download link. Generation is synchronous.
// @Tags         Generation
// @Accept       multipart/form-data
// @Produce      json
// @Param        doc_type       formData  string  true   "Document type (NDA, Offer_Letter, Contract, MOU, IP_Agreement)"
// @Param        language       formData  string  false  "Output language code, defaults to en"
// @Param        scenario       formData  string  false  "Scenario text; required unless scenario_file is given"
// @Param        scenario_file  formData  file    false  "Scenario file (.txt, .pdf, .docx, .rtf, .odt)"
// @Param        template       formData  file    false  "Reference .docx whose formatting is sampled"
// @Success      200  {object}  api.GenerateDocumentResponse  "Document generated"
// @Failure      400  {object}  api.ErrorResponse             "Invalid doc type, language, or scenario"
// @Failure      500  {object}  api.ErrorResponse             "Pipeline failure"
// @Router       /api/v1/documents/generate [post]
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, fmt.Errorf("%w: file too large or malformed form", docModel.ErrRequest))
		return
	}

	docType, ok := docModel.ParseDocType(r.FormValue("doc_type"))
	if !ok {
		WriteErrorResponse(w, fmt.Errorf("%w: unsupported doc type %q", docModel.ErrRequest, r.FormValue("doc_type")))
		return
	}
	language, ok := docModel.ParseLanguage(r.FormValue("language"))
	if !ok {
		WriteErrorResponse(w, fmt.Errorf("%w: unsupported language %q", docModel.ErrRequest, r.FormValue("language")))
		return
	}

	scenarioText, err := resolveScenario(r)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	scenarioText, err = scenario.Validate(scenarioText)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	template, templateName, err := readTemplate(r)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.PipelineTimeout)
	defer cancel()

	doc, err := handlerInstance.service.Generate(ctx, pipeline.Request{
		DocType:          docType,
		Language:         language,
		Scenario:         scenarioText,
		Template:         template,
		TemplateFilename: templateName,
	})
	if err != nil {
		logRH.Error("Generation failed", "docType", docType, "error", err)
		WriteErrorResponse(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToGenerateResponse(doc))
}

// resolveScenario prefers inline text; an uploaded scenario file is staged in
// the working directory only long enough to extract its text.
func resolveScenario(r *http.Request) (string, error) {
	if text := r.FormValue("scenario"); text != "" {
		return text, nil
	}

	fileReader, fileMetadata, err := r.FormFile("scenario_file")
	if err != nil {
		return "", fmt.Errorf("%w: scenario text or scenario_file is required", docModel.ErrRequest)
	}
	defer fileReader.Close()

	staged := filepath.Join(config.WorkingDir(),
		strconv.FormatInt(time.Now().UnixNano(), 10)+"-"+filepath.Base(fileMetadata.Filename))
	destination, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("staging scenario file: %w", err)
	}
	defer os.Remove(staged)

	if _, err := io.Copy(destination, fileReader); err != nil {
		destination.Close()
		return "", fmt.Errorf("staging scenario file: %w", err)
	}
	if err := destination.Close(); err != nil {
		return "", fmt.Errorf("staging scenario file: %w", err)
	}

	return scenario.FromFile(staged)
}

func readTemplate(r *http.Request) ([]byte, string, error) {
	fileReader, fileMetadata, err := r.FormFile("template")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("%w: reading template upload", docModel.ErrRequest)
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading template upload", docModel.ErrRequest)
	}
	return data, fileMetadata.Filename, nil
}

// DownloadHandler godoc
// @Summary      Download a generated document
// @Description  Streams a previously generated .docx artifact by its filename.
// @Tags         Generation
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        filename  path      string  true  "Artifact filename as returned by generate"
// @Success      200       {file}    binary  "The .docx file"
// @Failure      404       {object}  api.ErrorResponse  "Unknown artifact"
// @Router       /downloads/{filename} [get]
func DownloadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	fileName := utils.GetChiURLParam(r, "filename")
	data, err := handlerInstance.artifacts.Open(r.Context(), fileName)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		logRH.Error("Error streaming artifact", "fileName", fileName, "error", err)
	}
}

// ConfigHandler godoc
// @Summary      List supported document types and languages
// @Tags         Configuration
// @Produce      json
// @Success      200  {object}  api.ConfigResponse
// @Router       /api/v1/config [get]
func ConfigHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, adapter.ToConfigResponse())
}

// FieldsHandler godoc
// @Summary      List metadata fields for a document type
// @Tags         Configuration
// @Produce      json
// @Param        doc_type  path      string  true  "Document type"
// @Success      200       {object}  api.FieldsResponse
// @Failure      400       {object}  api.ErrorResponse  "Unsupported doc type"
// @Router       /api/v1/config/fields/{doc_type} [get]
func FieldsHandler(w http.ResponseWriter, r *http.Request) {
	raw := utils.GetChiURLParam(r, "doc_type")
	docType, ok := docModel.ParseDocType(raw)
	if !ok {
		WriteErrorResponse(w, fmt.Errorf("%w: unsupported doc type %q", docModel.ErrRequest, raw))
		return
	}

	spec, ok := handlerInstance.schemas.Fields(docType)
	if !ok {
		WriteErrorResponse(w, fmt.Errorf("%w: no field spec for %q", docModel.ErrNotFound, raw))
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToFieldsResponse(docType, spec))
}

// ListRecordsHandler godoc
// @Summary      List generation records
// @Description  Returns the metadata records of all documents still inside the retention window, newest first.
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  api.ListRecordsResponse
// @Failure      500  {object}  api.ErrorResponse  "Record store unavailable"
// @Router       /api/v1/documents [get]
func ListRecordsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := handlerInstance.records.ListRecords(r.Context())
	if err != nil {
		logRH.Error("Listing records failed", "error", err)
		WriteErrorResponse(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToListRecordsResponse(records))
}

// RecordHandler godoc
// @Summary      Get the generation record of a document
// @Description  Retrieves stored metadata for a prior generation by its record ID.
// @Tags         Generation
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  docModel.GenerationRecord
// @Failure      404  {object}  api.ErrorResponse  "Unknown record"
// @Router       /api/v1/documents/{id} [get]
func RecordHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.GetChiURLParam(r, "id")
	rec, found := handlerInstance.records.GetRecord(r.Context(), id)
	if !found {
		WriteErrorResponse(w, fmt.Errorf("%w: record %q", docModel.ErrNotFound, id))
		return
	}
	writeJsonResponse(w, http.StatusOK, rec)
}
