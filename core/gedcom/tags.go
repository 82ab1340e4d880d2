package gedcom

// Event and attribute tags of GEDCOM 5.5 grouped the way the decoder
// routes them.
var (
	individualEventTags = tagSet(
		"BIRT", "CHR", "DEAT", "BURI", "CREM", "ADOP", "BAPM", "BARM",
		"BASM", "BLES", "CHRA", "CONF", "FCOM", "ORDN", "NATU", "EMIG",
		"IMMI", "CENS", "PROB", "WILL", "GRAD", "RETI", "EVEN",
	)

	individualAttributeTags = tagSet(
		"CAST", "DSCR", "EDUC", "IDNO", "NATI", "NCHI", "NMR", "OCCU",
		"PROP", "RELI", "RESI", "SSN", "TITL",
	)

	familyEventTags = tagSet(
		"ANUL", "CENS", "DIV", "DIVF", "ENGA", "MARR", "MARB", "MARC",
		"MARL", "MARS", "EVEN",
	)
)

func tagSet(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}
