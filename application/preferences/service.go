/*
Package preferences Application Layer - per-owner display currency and language
*/
package preferences

import (
	"context"
	"encoding/json"

	"storefront/domain/preferences"
	"storefront/domain/shared"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// DefaultKey is the storage key of the preferences document.
const DefaultKey = "bw_preferences"

// UpdateRequest changes preferences; nil fields are left as they are.
type UpdateRequest struct {
	Currency *string `json:"currency"`
	Language *string `json:"language"`
}

// PreferencesResponse Preferences response DTO
type PreferencesResponse struct {
	Currency           string   `json:"currency"`
	Language           string   `json:"language"`
	SupportedCurrency  []string `json:"supported_currencies"`
	SupportedLanguages []string `json:"supported_languages"`
}

// FormatResponse is an INR amount rendered in the owner's currency.
type FormatResponse struct {
	Amount    int64   `json:"amount"`
	Currency  string  `json:"currency"`
	Symbol    string  `json:"symbol"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}

// TranslationResponse is one UI string.
type TranslationResponse struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Text     string `json:"text"`
	Known    bool   `json:"known"`
}

// ApplicationService Preferences application service
type ApplicationService struct {
	kv  shared.KVStore
	key string
	log *zap.Logger
}

// NewApplicationService stores each owner's preferences in kv under key,
// namespaced by owner. An empty key uses DefaultKey.
func NewApplicationService(kv shared.KVStore, key string) *ApplicationService {
	if key == "" {
		key = DefaultKey
	}
	return &ApplicationService{
		kv:  kv,
		key: key,
		log: logger.With(zap.String("component", "preferences")),
	}
}

// Resolve returns the owner's stored preferences. Without stored
// preferences the language is matched from acceptLanguage.
func (s *ApplicationService) Resolve(ctx context.Context, owner, acceptLanguage string) preferences.Preferences {
	kv := shared.NewNamespaced(s.kv, owner)
	data, ok, err := kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("load preferences failed, using defaults", zap.String("owner", owner), zap.Error(err))
	}
	if err == nil && ok {
		var p preferences.Preferences
		if err := json.Unmarshal(data, &p); err == nil {
			return p.Normalize()
		}
		s.log.Warn("decode preferences failed, using defaults", zap.String("owner", owner))
	}

	p := preferences.Default()
	p.Language = preferences.MatchAcceptLanguage(acceptLanguage)
	return p
}

func (s *ApplicationService) Get(ctx context.Context, owner, acceptLanguage string) PreferencesResponse {
	return toResponse(s.Resolve(ctx, owner, acceptLanguage))
}

// Update validates and stores the changed preferences. A failed write is
// logged; the returned preferences are what the owner asked for.
func (s *ApplicationService) Update(ctx context.Context, owner, acceptLanguage string, req UpdateRequest) (PreferencesResponse, error) {
	p := s.Resolve(ctx, owner, acceptLanguage)

	if req.Currency != nil {
		c, ok := preferences.ParseCurrency(*req.Currency)
		if !ok {
			return PreferencesResponse{}, shared.NewValidationError("preferences", "currency",
				"unsupported currency: "+*req.Currency, shared.ErrInvalidInput)
		}
		p.Currency = c
	}
	if req.Language != nil {
		l, ok := preferences.ParseLanguage(*req.Language)
		if !ok {
			return PreferencesResponse{}, shared.NewValidationError("preferences", "language",
				"unsupported language: "+*req.Language, shared.ErrInvalidInput)
		}
		p.Language = l
	}

	data, err := json.Marshal(p)
	if err == nil {
		err = shared.NewNamespaced(s.kv, owner).Set(ctx, s.key, data)
	}
	if err != nil {
		s.log.Warn("persist preferences failed", zap.String("owner", owner), zap.Error(err))
	}
	return toResponse(p), nil
}

// Format renders amount in the owner's currency.
func (s *ApplicationService) Format(ctx context.Context, owner, acceptLanguage string, amount int64) FormatResponse {
	p := s.Resolve(ctx, owner, acceptLanguage)
	return FormatResponse{
		Amount:    amount,
		Currency:  string(p.Currency),
		Symbol:    p.Currency.Symbol(),
		Converted: p.Currency.Convert(amount),
		Formatted: p.FormatPrice(amount),
	}
}

// Translate looks key up in the owner's language.
func (s *ApplicationService) Translate(ctx context.Context, owner, acceptLanguage, key string) TranslationResponse {
	p := s.Resolve(ctx, owner, acceptLanguage)
	k := preferences.Key(key)
	return TranslationResponse{
		Key:      key,
		Language: string(p.Language),
		Text:     p.T(k),
		Known:    preferences.Known(k),
	}
}

func toResponse(p preferences.Preferences) PreferencesResponse {
	currencies := preferences.Currencies()
	langs := preferences.Languages()
	resp := PreferencesResponse{
		Currency:           string(p.Currency),
		Language:           string(p.Language),
		SupportedCurrency:  make([]string, len(currencies)),
		SupportedLanguages: make([]string, len(langs)),
	}
	for i, c := range currencies {
		resp.SupportedCurrency[i] = string(c)
	}
	for i, l := range langs {
		resp.SupportedLanguages[i] = string(l)
	}
	return resp
}
