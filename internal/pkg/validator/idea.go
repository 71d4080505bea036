package validator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

const (
	maxNameLength    = 200
	maxTaglineLength = 300
	maxBriefLength   = 10000
	maxTagCount      = 20
)

// Validator validates API request payloads
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSubmitIdea(req *entity.SubmitIdeaRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if len(req.Name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", entity.ErrInvalidParameter, maxNameLength)
	}
	if len(req.Tagline) > maxTaglineLength {
		return fmt.Errorf("%w: tagline exceeds %d characters", entity.ErrInvalidParameter, maxTaglineLength)
	}
	if len(req.Brief) > maxBriefLength {
		return fmt.Errorf("%w: brief exceeds %d characters", entity.ErrInvalidParameter, maxBriefLength)
	}
	if len(req.Tags) > maxTagCount {
		return fmt.Errorf("%w: maximum %d tags allowed, got %d", entity.ErrInvalidParameter, maxTagCount, len(req.Tags))
	}

	for _, raw := range req.MediaURLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: media url %q", entity.ErrInvalidParameter, raw)
		}
	}

	return nil
}
