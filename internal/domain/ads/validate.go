package ads

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"adsgateway-service/internal/pkg/apierror"
)

const (
	maxNameLength    = 255
	maxKeywordLength = 80
	maxKeywords      = 100
	forbiddenChars   = `<>&"'`
)

var digitsOnlyRe = regexp.MustCompile(`^\d{10}$`)

// strictCustomerID accepts only a 10-digit ID, optionally dash-separated.
// This is the request-validation rule; the permissive coercion of
// NormalizeCustomerID is reserved for values that already passed it.
func strictCustomerID(value any) error {
	s, _ := value.(string)
	stripped := strings.ReplaceAll(s, "-", "")
	if !digitsOnlyRe.MatchString(stripped) {
		return errors.New("must be exactly 10 digits (dashes allowed)")
	}
	return nil
}

func noForbiddenChars(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, forbiddenChars) {
		return fmt.Errorf("must not contain any of %s", forbiddenChars)
	}
	return nil
}

func noSurroundingSpace(value any) error {
	s, _ := value.(string)
	if s != strings.TrimSpace(s) {
		return errors.New("must not have leading or trailing whitespace")
	}
	return nil
}

func campaignResourceShape(value any) error {
	s, _ := value.(string)
	if _, _, err := ParseCampaignResource(s); err != nil {
		return errors.New("must match customers/{10-digit}/campaigns/{numeric}")
	}
	return nil
}

// keywordList enforces per-keyword rules and rejects case-insensitive
// duplicates outright rather than dropping them.
func keywordList(value any) error {
	keywords, _ := value.([]string)
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			return errors.New("keywords must be non-empty after trimming")
		}
		if len([]rune(kw)) > maxKeywordLength {
			return fmt.Errorf("keyword %q exceeds %d characters", kw, maxKeywordLength)
		}
		if strings.ContainsAny(kw, forbiddenChars) {
			return fmt.Errorf("keyword %q contains a forbidden character (%s)", kw, forbiddenChars)
		}
		folded := strings.ToLower(kw)
		if _, dup := seen[folded]; dup {
			return fmt.Errorf("duplicate keyword %q (case-insensitive)", kw)
		}
		seen[folded] = struct{}{}
	}
	return nil
}

// toValidationError flattens ozzo's per-field error map into a single
// taxonomy error naming the first offending field (fields sorted for
// determinism).
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		first := fields[0]
		e := apierror.Validationf(first, "%s: %v", first, fieldErrs[first])
		if len(fields) > 1 {
			e.WithDetails("all_fields", fields)
		}
		return e
	}
	return apierror.Wrap(apierror.KindValidation, "invalid request", err)
}

// Normalize validates the campaign request and returns a canonical copy:
// trimmed name, 2-decimal budget, digits-only customer ID.
func (r CreateCampaignRequest) Normalize() (*CreateCampaignRequest, error) {
	out := r
	out.CampaignName = strings.TrimSpace(r.CampaignName)
	out.BudgetAmount = RoundMoney(r.BudgetAmount)

	err := validation.ValidateStruct(&out,
		validation.Field(&out.CustomerID, validation.Required, validation.By(strictCustomerID)),
		validation.Field(&out.CampaignName,
			validation.Required,
			validation.RuneLength(1, maxNameLength),
			validation.By(noForbiddenChars),
		),
		// Required rejects the zero value; Min alone would skip it.
		validation.Field(&out.BudgetAmount,
			validation.Required,
			validation.Min(0.0).Exclusive(),
			validation.Max(10000.0),
		),
		validation.Field(&out.GeoTargets,
			validation.Required,
			validation.Each(validation.Required, validation.Min(int64(1))),
		),
		validation.Field(&out.Status, validation.Required, validation.In(StatusPaused, StatusEnabled)),
	)
	if err != nil {
		return nil, toValidationError(err)
	}

	out.CustomerID = strings.ReplaceAll(out.CustomerID, "-", "")
	return &out, nil
}

// Normalize validates the ad-group request and returns a canonical copy
// with trimmed keywords and a 2-decimal bid. The ad-group name must
// already be trimmed; leading or trailing whitespace is an error, not a
// normalization.
func (r CreateAdGroupRequest) Normalize() (*CreateAdGroupRequest, error) {
	out := r
	out.MaxCPC = RoundMoney(r.MaxCPC)
	out.Keywords = make([]string, len(r.Keywords))
	for i, kw := range r.Keywords {
		out.Keywords[i] = strings.TrimSpace(kw)
	}

	err := validation.ValidateStruct(&out,
		validation.Field(&out.CampaignID, validation.Required, validation.By(campaignResourceShape)),
		validation.Field(&out.AdGroupName,
			validation.Required,
			validation.By(noSurroundingSpace),
			validation.RuneLength(1, maxNameLength),
			validation.By(noForbiddenChars),
		),
		validation.Field(&out.Keywords,
			validation.Required,
			validation.Length(1, maxKeywords),
			validation.By(keywordList),
		),
		validation.Field(&out.MaxCPC,
			validation.Required,
			validation.Min(0.01),
			validation.Max(100.0),
		),
		validation.Field(&out.Status, validation.Required, validation.In(StatusPaused, StatusEnabled)),
	)
	if err != nil {
		return nil, toValidationError(err)
	}
	return &out, nil
}

// Normalize validates the ideas query and returns a canonical copy with
// trimmed seeds and a digits-only customer ID.
func (q KeywordIdeasQuery) Normalize() (*KeywordIdeasQuery, error) {
	out := q
	out.Seeds = make([]string, len(q.Seeds))
	for i, s := range q.Seeds {
		out.Seeds[i] = strings.TrimSpace(s)
	}

	err := validation.ValidateStruct(&out,
		validation.Field(&out.CustomerID, validation.Required, validation.By(strictCustomerID)),
		validation.Field(&out.Seeds,
			validation.Required,
			validation.By(keywordList),
		),
		validation.Field(&out.Geo, validation.Required, validation.Match(regexp.MustCompile(`^\d+$`))),
		validation.Field(&out.Language, validation.Required, validation.Match(regexp.MustCompile(`^\d+$`))),
		validation.Field(&out.Limit, validation.Min(0), validation.Max(10000)),
	)
	if err != nil {
		return nil, toValidationError(err)
	}

	out.CustomerID = strings.ReplaceAll(out.CustomerID, "-", "")
	return &out, nil
}

// Normalize validates a raw GAQL passthrough request.
func (r GAQLRequest) Normalize() (*GAQLRequest, error) {
	out := r
	out.Query = strings.TrimSpace(r.Query)

	err := validation.ValidateStruct(&out,
		validation.Field(&out.CustomerID, validation.Required, validation.By(strictCustomerID)),
		validation.Field(&out.Query, validation.Required),
	)
	if err != nil {
		return nil, toValidationError(err)
	}

	out.CustomerID = strings.ReplaceAll(out.CustomerID, "-", "")
	return &out, nil
}
