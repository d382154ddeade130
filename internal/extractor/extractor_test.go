package extractor

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mailscout/internal/config"
)

func newTestExtractor(client *mockAnthropicClient) *Extractor {
	return New(client, config.AnthropicConfig{
		Model:     "claude-haiku-4-5-20251001",
		MaxTokens: 4096,
	})
}

func TestIdentifyCompanies(t *testing.T) {
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse("```json\n"+
		`{"companies":[`+
		`{"name":"Acme Plumbing","domain":"https://www.acmeplumbing.com/about","suggested_emails":["info@acmeplumbing.com"," contact@acmeplumbing.com ",""]},`+
		`{"name":"No Domain Co","domain":""}],`+
		`"reasoning":"local plumbing companies"}`+"\n```"), nil)

	leads, err := newTestExtractor(client).IdentifyCompanies(context.Background(), "plumbers in Denver")
	require.NoError(t, err)

	require.Len(t, leads, 1)
	assert.Equal(t, "Acme Plumbing", leads[0].Name)
	assert.Equal(t, "acmeplumbing.com", leads[0].Domain)
	assert.Equal(t, []string{"info@acmeplumbing.com", "contact@acmeplumbing.com"}, leads[0].SuggestedEmails)
}

func TestIdentifyCompaniesParseFailure(t *testing.T) {
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse("I could not find any companies."), nil)

	_, err := newTestExtractor(client).IdentifyCompanies(context.Background(), "plumbers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestIdentifyCompaniesModelError(t *testing.T) {
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, eris.New("overloaded"))

	_, err := newTestExtractor(client).IdentifyCompanies(context.Background(), "plumbers")
	require.Error(t, err)
}

func TestExtractDomains(t *testing.T) {
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse(
		`{"domains":["mail.shop.example.co.uk","Example.co.uk","www.other.com","other.com","not-a-domain",""]}`), nil)

	domains, err := newTestExtractor(client).ExtractDomains(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, []string{"example.co.uk", "other.com"}, domains)
}

func TestExtractAddresses(t *testing.T) {
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse(
		`{"addresses":["A@B.com","","  c@d.org  "],"char_count":42,"summary":"a contact list"}`), nil)

	raw, err := newTestExtractor(client).ExtractAddresses(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"A@B.com", "c@d.org"}, raw.Addresses)
	assert.Equal(t, 42, raw.CharCount)
	assert.Equal(t, "a contact list", raw.Summary)
}

func TestExtractAddressesMissingFields(t *testing.T) {
	// Model omitted optional fields; the call still succeeds with zero values.
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse(`{"addresses":[]}`), nil)

	raw, err := newTestExtractor(client).ExtractAddresses(context.Background(), "text")
	require.NoError(t, err)
	assert.Empty(t, raw.Addresses)
	assert.Zero(t, raw.CharCount)
}

func TestGuessFromNames(t *testing.T) {
	client := &mockAnthropicClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse(
		`{"addresses":["jane.doe@gmail.com","jdoe@outlook.com"],"summary":"two people"}`), nil)

	guesses, err := newTestExtractor(client).GuessFromNames(context.Background(), "Jane Doe")
	require.NoError(t, err)
	assert.Len(t, guesses.Addresses, 2)
	assert.Equal(t, "two people", guesses.Summary)
}
