package contract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nurpe/pedidos/internal/model"
)

// Patterns follow the business' contract template. All of them are case
// insensitive and let "." cross line breaks.
var (
	contractorPattern = regexp.MustCompile(
		`(?is)CONTRATANTE\s*:\s*Sr\(a\)\s*(.*?),\s*brasileiro\(a\).*?RG:\s*([\d.\s-]+?)\s*e\s*CPF:\s*([\d.\s-]+?),`)
	contractedPattern = regexp.MustCompile(
		`(?is)CONTRATADO\s*(.*?),\s*inscrito\s*sob\s*o\s*CNPJ:\s*([\d./\s-]+?),`)
	itemsSectionPattern = regexp.MustCompile(`(?is)PRODUTOS CONTRATADOS\s*(.*?)\s*CLÁUSULA 2`)
	itemLinePattern     = regexp.MustCompile(`^\s*(\d+)\s+(.*?)\s+([\d,.]+)\s+([\d,.]+)\s*$`)
	totalValuePattern   = regexp.MustCompile(`(?is)O valor total de R\$\s*([\d,.]+)`)
	paymentDatePattern  = regexp.MustCompile(`(?is)pagos no dia\s*(\d{2}/\d{2}/\d{4})`)
	eventDatePattern    = regexp.MustCompile(`(?is)O evento acontecerá no dia:\s*([\d/]+)`)
	locationPattern     = regexp.MustCompile(`(?is)Local do\s*evento\s*:\s*(.*?)\n`)
)

// Parse extracts the contract fields from a document text. It never fails:
// a section that is missing or does not fit its pattern leaves the
// corresponding field absent without touching the others. Unicode space
// separators such as NBSP count as plain spaces.
func Parse(text string) model.ContractRecord {
	text = strings.Map(plainSpace, text)
	return model.ContractRecord{
		Contractor:      parseContractor(text),
		ContractedParty: parseContractedParty(text),
		LineItems:       parseLineItems(text),
		TotalValue:      captureOne(totalValuePattern, text),
		PaymentDate:     captureOne(paymentDatePattern, text),
		EventDate:       captureOne(eventDatePattern, text),
		EventLocation:   captureOne(locationPattern, text),
	}
}

// plainSpace maps every Zs rune to an ASCII space, since \s in the
// patterns only matches ASCII whitespace.
func plainSpace(r rune) rune {
	if r != ' ' && unicode.Is(unicode.Zs, r) {
		return ' '
	}
	return r
}

func parseContractor(text string) model.Optional[model.Contractor] {
	m := contractorPattern.FindStringSubmatch(text)
	if m == nil {
		return model.None[model.Contractor]()
	}
	return model.Some(model.Contractor{
		Name:       strings.TrimSpace(m[1]),
		NationalID: strings.TrimSpace(m[2]),
		TaxID:      strings.TrimSpace(m[3]),
	})
}

func parseContractedParty(text string) model.Optional[model.ContractedParty] {
	m := contractedPattern.FindStringSubmatch(text)
	if m == nil {
		return model.None[model.ContractedParty]()
	}
	return model.Some(model.ContractedParty{
		CompanyName:  strings.TrimSpace(m[1]),
		CompanyTaxID: strings.TrimSpace(m[2]),
	})
}

// parseLineItems returns the rows of the products section in source order.
// The result is never nil.
func parseLineItems(text string) []model.LineItem {
	items := make([]model.LineItem, 0)
	section := itemsSectionPattern.FindStringSubmatch(text)
	if section == nil {
		return items
	}

	for _, line := range strings.Split(strings.TrimSpace(section[1]), "\n") {
		line = strings.TrimSpace(line)
		if !isItemCandidate(line) {
			continue
		}
		if item, ok := parseItemLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

// isItemCandidate reports whether a trimmed line may hold a product row:
// it must be non-empty and start with a digit.
func isItemCandidate(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return line != "" && unicode.IsDigit(r)
}

func parseItemLine(line string) (model.LineItem, bool) {
	m := itemLinePattern.FindStringSubmatch(line)
	if m == nil {
		return model.LineItem{}, false
	}
	return model.LineItem{
		Quantity:    strings.TrimSpace(m[1]),
		Description: strings.TrimSpace(m[2]),
		UnitValue:   strings.TrimSpace(m[3]),
		TotalValue:  strings.TrimSpace(m[4]),
	}, true
}

func captureOne(pattern *regexp.Regexp, text string) model.Optional[string] {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return model.None[string]()
	}
	return model.Some(strings.TrimSpace(m[1]))
}
