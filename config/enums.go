package config

//go:generate go tool go-enum --names --marshal

// Specification of requested output type.
// ENUM(json, ion, sqlite, text)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtIon:
		return ".ion"
	case OutputFmtSqlite:
		return ".sqlite"
	case OutputFmtText:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Publisher selects the set of node enhancements applied on top of generic
// conversion.
// ENUM(default, elife, landes, plos)
type Publisher int
