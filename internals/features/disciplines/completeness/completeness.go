// file: internals/features/disciplines/completeness/completeness.go
package completeness

// A discipline is complete once it has at least one video, one e-book
// (static or interactive, either is enough) and enough simulado and
// avaliação final questions.

type VideoRef struct {
	URL            string
	DeclaredSource string
	StartTime      string
}

type StaticEbook struct {
	URL string
}

type InteractiveEbook struct {
	URL         string
	Title       string
	Description string
}

type Question struct {
	Statement          string
	Options            []string
	CorrectOptionIndex int
}

// State is everything attached to one discipline.
type State struct {
	Videos                 []VideoRef
	StaticEbook            *StaticEbook
	InteractiveEbook       *InteractiveEbook
	SimulatedExamQuestions []Question
	FinalExamQuestions     []Question
}

// Counts is the same information as State in the shape COUNT queries return it.
type Counts struct {
	Videos              int
	HasStaticEbook      bool
	HasInteractiveEbook bool
	SimuladoQuestions   int
	FinalExamQuestions  int
}

func (s State) Counts() Counts {
	return Counts{
		Videos:              len(s.Videos),
		HasStaticEbook:      s.StaticEbook != nil,
		HasInteractiveEbook: s.InteractiveEbook != nil,
		SimuladoQuestions:   len(s.SimulatedExamQuestions),
		FinalExamQuestions:  len(s.FinalExamQuestions),
	}
}

type Requirements struct {
	HasVideo          bool `json:"hasVideo"`
	HasEbook          bool `json:"hasEbook"`
	HasSimulado       bool `json:"hasSimulado"`
	HasAvaliacaoFinal bool `json:"hasAvaliacaoFinal"`
}

type Result struct {
	IsComplete   bool         `json:"isComplete"`
	Requirements Requirements `json:"requirements"`
}

// Policy holds the minimum question counts. Anything below 1 is treated as 1.
type Policy struct {
	MinSimuladoQuestions  int
	MinFinalExamQuestions int
}

var DefaultPolicy = Policy{MinSimuladoQuestions: 1, MinFinalExamQuestions: 1}

func (p Policy) Evaluate(s State) Result {
	return p.EvaluateCounts(s.Counts())
}

func (p Policy) EvaluateCounts(c Counts) Result {
	req := Requirements{
		HasVideo:          c.Videos >= 1,
		HasEbook:          c.HasStaticEbook || c.HasInteractiveEbook,
		HasSimulado:       c.SimuladoQuestions >= atLeastOne(p.MinSimuladoQuestions),
		HasAvaliacaoFinal: c.FinalExamQuestions >= atLeastOne(p.MinFinalExamQuestions),
	}
	return Result{
		IsComplete:   req.HasVideo && req.HasEbook && req.HasSimulado && req.HasAvaliacaoFinal,
		Requirements: req,
	}
}

// Evaluate uses DefaultPolicy.
func Evaluate(s State) Result { return DefaultPolicy.Evaluate(s) }

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
