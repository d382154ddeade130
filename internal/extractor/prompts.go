package extractor

// System prompts and user prompt templates for the four extractor operations.
// Every operation requires a JSON object response; parsing failures surface
// as errors to the orchestrator, which treats them as zero results.

const companiesSystem = `You are a lead-research assistant identifying real companies that match a business search. Return only valid JSON matching the requested schema. Never invent person names or person-specific email addresses; suggested emails must use generic role-based mailboxes only (contact@, info@, sales@, support@, hello@, office@).`

const companiesPrompt = `Identify real companies matching this search criteria. Cast a wide net across
the industry and region described, then return the 5-10 strongest matches.

Search criteria: %s

For each company provide its name, its primary website domain (registrable
domain only, no scheme, no path, no subdomain), and 2-4 suggested generic
role-based email addresses at that domain.

Return a valid JSON object:
{"companies": [{"name": "<company name>", "domain": "<example.com>", "suggested_emails": ["info@example.com"]}], "reasoning": "<one paragraph explaining the selection>"}`

const domainsSystem = `You extract website domains from free text. Return only valid JSON matching the requested schema.`

const domainsPrompt = `Extract every website domain mentioned in the text below. Collapse
subdomains to the registrable root domain (mail.shop.example.co.uk becomes
example.co.uk). Deduplicate. Ignore email addresses.

Text:
%s

Return a valid JSON object:
{"domains": ["example.com"]}`

const addressesSystem = `You perform purely lexical extraction of email-like substrings from text. Do not filter, validate, or judge deliverability. Return only valid JSON matching the requested schema.`

const addressesPrompt = `List every email-like substring that appears in the text below, exactly as
written. Also report the character count of the input and a one-line summary
of what the text appears to be.

Text:
%s

Return a valid JSON object:
{"addresses": ["as@written.com"], "char_count": 123, "summary": "<one line>"}`

const namesSystem = `You guess plausible email addresses for person names found in text. Return only valid JSON matching the requested schema.`

const namesPrompt = `The text below contains person names. For each person, guess 1-3 plausible
email addresses using common patterns (first.last@domain, firstinitiallast@domain,
firstlast@domain). Prefer public webmail domains (gmail.com, outlook.com,
yahoo.com) unless the text explicitly and strongly associates the person with
a company; only then use that company's domain.

Text:
%s

Return a valid JSON object:
{"addresses": ["jane.doe@gmail.com"], "summary": "<one line>"}`
