package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/0xERR0R/domainextractor/evt"
	"github.com/0xERR0R/domainextractor/extractor"
	"github.com/0xERR0R/domainextractor/log"
	"github.com/0xERR0R/domainextractor/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

const (
	contentTypeHeader = "content-type"
	jsonContentType   = "application/json"

	domainParam = "domain"
	urlParam    = "url"
)

// Extractor interface to split and check domains
type Extractor interface {
	Extract(domain string) (extractor.Parts, error)
	ExtractFromURL(url string) (extractor.Parts, error)
	ExtractQuestion(question dns.Question) (extractor.Parts, error)
	IsValidDomain(domain string) bool
	ListTLDs() []string
}

// ListRefresher interface to control the list refresh
type ListRefresher interface {
	RefreshLists(ctx context.Context) error
}

// ExtractorEndpoint endpoint for domain extraction and validation
type ExtractorEndpoint struct {
	extractor Extractor
}

// ListRefreshEndpoint endpoint for list refresh
type ListRefreshEndpoint struct {
	refresher ListRefresher
}

// RegisterEndpoint registers an implementation as HTTP endpoint
func RegisterEndpoint(router chi.Router, t interface{}) {
	if a, ok := t.(Extractor); ok {
		registerExtractorEndpoints(router, a)
	}

	if a, ok := t.(ListRefresher); ok {
		registerListRefreshEndpoints(router, a)
	}
}

func registerExtractorEndpoints(router chi.Router, e Extractor) {
	s := &ExtractorEndpoint{e}

	router.Get(PathExtractPath, s.apiExtract)
	router.Get(PathExtractURLPath, s.apiExtractURL)
	router.Get(PathValidatePath, s.apiValidate)
	router.Get(PathTLDsPath, s.apiTLDs)
}

func registerListRefreshEndpoints(router chi.Router, refresher ListRefresher) {
	l := &ListRefreshEndpoint{refresher}

	router.Post(PathListsRefreshPath, l.apiListRefresh)
}

// apiExtract is the http endpoint to split a domain
// @Summary Extract domain
// @Description split a domain into suffix, domain and subdomain
// @Tags extract
// @Produce  json
// @Param domain query string true "domain to split (Example: www.example.co.uk)"
// @Success 200 {object} extractor.Parts "Returns the domain parts"
// @Failure 400 {object} api.ErrorResponse "Missing or invalid domain"
// @Router /extract [get]
func (s *ExtractorEndpoint) apiExtract(rw http.ResponseWriter, req *http.Request) {
	logger := requestLogger(req, "extract")

	domain, ok := requiredParam(rw, req, domainParam)
	if !ok {
		return
	}

	parts, err := s.extractor.Extract(domain)
	if err != nil {
		logger.Debugf("can't extract '%s': %s", log.EscapeInput(domain), err)
		writeError(rw, http.StatusBadRequest, err)
		evt.Bus().Publish(evt.RequestProcessed, "extract", false)

		return
	}

	logger.Debugf("extracted '%s': %s", log.EscapeInput(domain), parts.RegistrableDomain())
	writeJSON(rw, http.StatusOK, parts)
	evt.Bus().Publish(evt.RequestProcessed, "extract", true)
}

// apiExtractURL is the http endpoint to split the host of an URL
// @Summary Extract URL
// @Description split the host of an URL into suffix, domain and subdomain
// @Tags extract
// @Produce  json
// @Param url query string true "URL (Example: https://user@www.example.co.uk:8080/path)"
// @Success 200 {object} extractor.Parts "Returns the domain parts"
// @Failure 400 {object} api.ErrorResponse "Missing or invalid URL"
// @Router /extract/url [get]
func (s *ExtractorEndpoint) apiExtractURL(rw http.ResponseWriter, req *http.Request) {
	logger := requestLogger(req, "extractURL")

	url, ok := requiredParam(rw, req, urlParam)
	if !ok {
		return
	}

	parts, err := s.extractor.ExtractFromURL(url)
	if err != nil {
		logger.Debugf("can't extract '%s': %s", log.EscapeInput(url), err)
		writeError(rw, http.StatusBadRequest, err)
		evt.Bus().Publish(evt.RequestProcessed, "extractURL", false)

		return
	}

	writeJSON(rw, http.StatusOK, parts)
	evt.Bus().Publish(evt.RequestProcessed, "extractURL", true)
}

// apiValidate is the http endpoint to check a domain
// @Summary Validate domain
// @Description check length, characters and IDNA conversion of a domain
// @Tags validate
// @Produce  json
// @Param domain query string true "domain to check (Example: 香格里拉.com)"
// @Success 200 {object} api.ValidationResult "Returns the check result"
// @Failure 400 {object} api.ErrorResponse "Missing domain"
// @Router /validate [get]
func (s *ExtractorEndpoint) apiValidate(rw http.ResponseWriter, req *http.Request) {
	logger := requestLogger(req, "validate")

	domain, ok := requiredParam(rw, req, domainParam)
	if !ok {
		return
	}

	valid := s.extractor.IsValidDomain(domain)
	logger.Debugf("'%s' valid: %t", log.EscapeInput(domain), valid)

	writeJSON(rw, http.StatusOK, ValidationResult{Valid: valid})
	evt.Bus().Publish(evt.RequestProcessed, "validate", true)
}

// apiTLDs is the http endpoint to list all known suffix rules
// @Summary List suffixes
// @Description list all compiled rules, IDN rules in both Unicode and ASCII form
// @Tags lists
// @Produce  json
// @Success 200 {array} string "Returns the rules"
// @Router /tlds [get]
func (s *ExtractorEndpoint) apiTLDs(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, s.extractor.ListTLDs())
	evt.Bus().Publish(evt.RequestProcessed, "tlds", true)
}

// apiListRefresh is the http endpoint to trigger the refresh of the suffix list
// @Summary List refresh
// @Description Reload the suffix list from its source
// @Tags lists
// @Success 200   "List was reloaded"
// @Failure 500 {object} api.ErrorResponse "List could not be reloaded, the previous one stays active"
// @Router /lists/refresh [post]
func (l *ListRefreshEndpoint) apiListRefresh(rw http.ResponseWriter, req *http.Request) {
	logger := requestLogger(req, "refresh")
	logger.Info("refreshing suffix list...")

	if err := l.refresher.RefreshLists(req.Context()); err != nil {
		logger.Error("can't refresh the suffix list: ", log.EscapeInput(err.Error()))
		writeError(rw, http.StatusInternalServerError, err)
		evt.Bus().Publish(evt.RequestProcessed, "refresh", false)

		return
	}

	writeJSON(rw, http.StatusOK, struct{}{})
	evt.Bus().Publish(evt.RequestProcessed, "refresh", true)
}

func requestLogger(req *http.Request, operation string) *logrus.Entry {
	_, logger := log.CtxWithFields(req.Context(), logrus.Fields{
		"prefix":    "api",
		"req_id":    uuid.New().String(),
		"operation": operation,
	})

	return logger
}

func requiredParam(rw http.ResponseWriter, req *http.Request, name string) (string, bool) {
	value := req.URL.Query().Get(name)
	if len(value) == 0 {
		writeError(rw, http.StatusBadRequest, fmt.Errorf("missing query parameter '%s'", name))

		return "", false
	}

	return value, true
}

func writeError(rw http.ResponseWriter, status int, err error) {
	writeJSON(rw, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(rw http.ResponseWriter, status int, v any) {
	rw.Header().Set(contentTypeHeader, jsonContentType)
	rw.WriteHeader(status)

	response, err := json.Marshal(v)
	util.LogOnError("unable to marshal response ", err)

	_, err = rw.Write(response)
	util.LogOnError("unable to write response ", err)
}
