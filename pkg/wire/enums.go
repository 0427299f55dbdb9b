package wire

// enumTable is one symbol table for an enum-typed attribute, plus the
// category label used in "Unknown <Category>" fallback renderings.
type enumTable struct {
	category string
	symbols  map[int32]string
}

// EnumRegistry maps well-known attribute names to their enum symbol
// tables. A registry is immutable after construction; one instance is
// built at process start and shared by reference.
type EnumRegistry struct {
	tables map[string]*enumTable
}

// Lookup resolves an enum value under the given attribute name. The
// name match is case-sensitive. Returns false if the name has no
// registered table or the value no registered symbol.
func (r *EnumRegistry) Lookup(name string, value int32) (string, bool) {
	t, ok := r.tables[name]
	if !ok {
		return "", false
	}
	sym, ok := t.symbols[value]
	return sym, ok
}

// Known returns true if the attribute name has a registered table.
func (r *EnumRegistry) Known(name string) bool {
	_, ok := r.tables[name]
	return ok
}

// Category returns the category label for an attribute name, used to
// render unmatched values as "Unknown <Category>".
func (r *EnumRegistry) Category(name string) string {
	if t, ok := r.tables[name]; ok {
		return t.category
	}
	return ""
}

var printerStateSymbols = map[int32]string{
	3: "idle",
	4: "processing",
	5: "stopped",
}

var jobStateSymbols = map[int32]string{
	3: "pending",
	4: "pending-held",
	5: "processing",
	6: "processing-stopped",
	7: "canceled",
	8: "aborted",
	9: "completed",
}

var documentStateSymbols = map[int32]string{
	3: "pending",
	5: "processing",
	6: "processing-stopped",
	7: "canceled",
	8: "aborted",
	9: "completed",
}

var finishingsSymbols = map[int32]string{
	3:   "none",
	4:   "staple",
	5:   "punch",
	6:   "cover",
	7:   "bind",
	8:   "saddle-stitch",
	9:   "edge-stitch",
	10:  "fold",
	11:  "trim",
	12:  "bale",
	13:  "booklet-maker",
	14:  "jog-offset",
	15:  "coat",
	16:  "laminate",
	20:  "staple-top-left",
	21:  "staple-bottom-left",
	22:  "staple-top-right",
	23:  "staple-bottom-right",
	24:  "edge-stitch-left",
	25:  "edge-stitch-top",
	26:  "edge-stitch-right",
	27:  "edge-stitch-bottom",
	28:  "staple-dual-left",
	29:  "staple-dual-top",
	30:  "staple-dual-right",
	31:  "staple-dual-bottom",
	32:  "staple-triple-left",
	33:  "staple-triple-top",
	34:  "staple-triple-right",
	35:  "staple-triple-bottom",
	50:  "bind-left",
	51:  "bind-top",
	52:  "bind-right",
	53:  "bind-bottom",
	60:  "trim-after-pages",
	61:  "trim-after-documents",
	62:  "trim-after-copies",
	63:  "trim-after-job",
	70:  "punch-top-left",
	71:  "punch-bottom-left",
	72:  "punch-top-right",
	73:  "punch-bottom-right",
	74:  "punch-dual-left",
	75:  "punch-dual-top",
	76:  "punch-dual-right",
	77:  "punch-dual-bottom",
	78:  "punch-triple-left",
	79:  "punch-triple-top",
	80:  "punch-triple-right",
	81:  "punch-triple-bottom",
	82:  "punch-quad-left",
	83:  "punch-quad-top",
	84:  "punch-quad-right",
	85:  "punch-quad-bottom",
	86:  "punch-multiple-left",
	87:  "punch-multiple-top",
	88:  "punch-multiple-right",
	89:  "punch-multiple-bottom",
	90:  "fold-accordion",
	91:  "fold-double-gate",
	92:  "fold-gate",
	93:  "fold-half",
	94:  "fold-half-z",
	95:  "fold-left-gate",
	96:  "fold-letter",
	97:  "fold-parallel",
	98:  "fold-poster",
	99:  "fold-right-gate",
	100: "fold-z",
}

var orientationSymbols = map[int32]string{
	3: "portrait",
	4: "landscape",
	5: "reverse-landscape",
	6: "reverse-portrait",
	7: "none",
}

var qualitySymbols = map[int32]string{
	3: "draft",
	4: "normal",
	5: "high",
}

var transmissionStatusSymbols = map[int32]string{
	3: "pending",
	4: "pending-retry",
	5: "processing",
	7: "canceled",
	8: "aborted",
	9: "completed",
}

// operationSymbols is derived from the operation name table so that
// "operations-supported" values resolve to the same names as operation
// codes in the message header.
func operationSymbols() map[int32]string {
	syms := make(map[int32]string, len(operationNames))
	for op, name := range operationNames {
		syms[int32(op)] = name
	}
	return syms
}

var defaultEnums = newDefaultEnumRegistry()

func newDefaultEnumRegistry() *EnumRegistry {
	orientation := &enumTable{category: "Orientation Value", symbols: orientationSymbols}

	return &EnumRegistry{tables: map[string]*enumTable{
		"printer-state":        {category: "Printer State", symbols: printerStateSymbols},
		"job-state":            {category: "Job State", symbols: jobStateSymbols},
		"document-state":       {category: "Document State", symbols: documentStateSymbols},
		"operations-supported": {category: "Operation ID", symbols: operationSymbols()},
		"finishings":           {category: "Finishings Value", symbols: finishingsSymbols},
		"print-quality":        {category: "Print Quality", symbols: qualitySymbols},
		"transmission-status":  {category: "Transmission Status", symbols: transmissionStatusSymbols},

		// Both orientation attributes share one symbol table.
		"orientation-requested":  orientation,
		"media-feed-orientation": orientation,
	}}
}

// DefaultEnumRegistry returns the shared registry of well-known enum
// attribute tables.
func DefaultEnumRegistry() *EnumRegistry {
	return defaultEnums
}
