package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/mailscout/internal/extractor"
	"github.com/sells-group/mailscout/internal/model"
)

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) IdentifyCompanies(ctx context.Context, criteria string) ([]model.CompanyLead, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanyLead), args.Error(1)
}

func (m *mockExtractor) ExtractDomains(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockExtractor) ExtractAddresses(ctx context.Context, text string) (*extractor.RawExtraction, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractor.RawExtraction), args.Error(1)
}

func (m *mockExtractor) GuessFromNames(ctx context.Context, text string) (*extractor.NameGuesses, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractor.NameGuesses), args.Error(1)
}

type mockFinder struct {
	mock.Mock
}

func (m *mockFinder) FindContacts(ctx context.Context, domain string, maxResults int) ([]string, error) {
	args := m.Called(ctx, domain, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// stubVerifier returns a fixed status per address. Unlisted addresses are
// valid.
type stubVerifier struct {
	statuses map[string]model.Status
}

func (s stubVerifier) Verify(_ context.Context, address string) model.ValidationOutcome {
	status, ok := s.statuses[address]
	if !ok {
		status = model.StatusValid
	}
	return model.ValidationOutcome{Address: address, Status: status}
}

type panicVerifier struct{}

func (panicVerifier) Verify(_ context.Context, address string) model.ValidationOutcome {
	panic("verifier exploded on " + address)
}
