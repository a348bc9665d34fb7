// @title domainextractor API
// @description splits domains into public suffix, registrable label and subdomain

// @contact.name domainextractor@github
// @contact.url https://github.com/0xERR0R/domainextractor

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/
package api

const (
	PathExtractPath      = "/api/extract"
	PathExtractURLPath   = "/api/extract/url"
	PathValidatePath     = "/api/validate"
	PathTLDsPath         = "/api/tlds"
	PathListsRefreshPath = "/api/lists/refresh"
)

// ValidationResult is the answer of the validate endpoint
type ValidationResult struct {
	// True if the domain passed all syntax and IDNA checks
	Valid bool `json:"valid"`
}

// ErrorResponse is returned with every 4xx and 5xx status
type ErrorResponse struct {
	// Reason of the failure
	Error string `json:"error"`
}
