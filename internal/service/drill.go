package service

import (
	"context"
	"fmt"
	"time"

	"przypadek/internal/domain"
	"przypadek/internal/translate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var translationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "translation_requests_total",
		Help: "Total number of calls to the translation provider",
	},
	[]string{"provider", "status"},
)

// PhraseSource produces "adjective noun" phrases
type PhraseSource interface {
	RandomPairing() string
}

// DrillSettings holds the language pair and the per-call translation timeout
type DrillSettings struct {
	SourceLanguage string
	TargetLanguage string
	Timeout        time.Duration
}

// DrillService builds case drills and translates them
type DrillService struct {
	phrases    PhraseSource
	selector   *Selector
	translator translate.Translator
	settings   DrillSettings
	logger     *zap.Logger
}

// NewDrillService creates a new drill service
func NewDrillService(
	phrases PhraseSource,
	selector *Selector,
	translator translate.Translator,
	settings DrillSettings,
	logger *zap.Logger,
) *DrillService {
	return &DrillService{
		phrases:    phrases,
		selector:   selector,
		translator: translator,
		settings:   settings,
		logger:     logger,
	}
}

// Compose picks a phrase, a case and a plurality and renders the English sentence
func (s *DrillService) Compose() domain.Drill {
	phrase := s.phrases.RandomPairing()
	gramCase := s.selector.RandomCase()
	plurality := s.selector.RandomPlurality()

	return domain.Drill{
		Phrase:    phrase,
		Case:      gramCase,
		Plurality: plurality,
		English:   domain.Render(gramCase, plurality, phrase),
	}
}

// TranslateDrill translates the drill sentence and capitalizes the result
func (s *DrillService) TranslateDrill(ctx context.Context, drill domain.Drill) (*domain.CaseResponse, error) {
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	translated, err := s.translator.Translate(ctx, drill.English, s.settings.SourceLanguage, s.settings.TargetLanguage)
	if err != nil {
		translationRequestsTotal.WithLabelValues(s.translator.Name(), "error").Inc()
		s.logger.Warn("Translation failed",
			zap.String("provider", s.translator.Name()),
			zap.String("english", drill.English),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to translate %q: %w", drill.English, err)
	}
	translationRequestsTotal.WithLabelValues(s.translator.Name(), "ok").Inc()

	s.logger.Debug("Drill translated",
		zap.String("phrase", drill.Phrase),
		zap.Stringer("case", drill.Case),
		zap.Stringer("plurality", drill.Plurality),
		zap.String("english", drill.English),
		zap.String("translated", translated),
	)

	return &domain.CaseResponse{
		English: drill.English,
		Polish:  domain.Capitalize(translated),
	}, nil
}

// Next composes a fresh drill and translates it
func (s *DrillService) Next(ctx context.Context) (*domain.CaseResponse, error) {
	return s.TranslateDrill(ctx, s.Compose())
}
