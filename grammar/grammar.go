package grammar

// A Program is one textual circuit: a wire-count header followed by a
// flat gate list in program order.
type Program struct {
	Comments []*Comment  `parser:"@@*"`
	Header   *Header     `parser:"@@"`
	Gates    []*GateStmt `parser:"@@*"`
}

type Comment struct {
	Text string `parser:"@Comment"`
}

type Header struct {
	Wires int `parser:"\"circuit\" @Number \";\""`
}

type GateStmt struct {
	Comment *Comment `parser:"  @@"`
	Gate    *Gate    `parser:"| @@"`
}

type Gate struct {
	Name   string    `parser:"@Ident"`
	Params []float64 `parser:"[ \"(\" @Number { \",\" @Number } \")\" ]"`
	Wires  []int     `parser:"@Number { \",\" @Number } \";\""`
}
