package agent

// Status drives routing between pipeline steps.
type Status string

const (
	StatusInitial            Status = "inicial"
	StatusIDExtracted        Status = "id_extraido"
	StatusTranscriptObtained Status = "transcricao_obtida"
	StatusSummaryGenerated   Status = "resumo_gerado"
	StatusError              Status = "erro"
	StatusErrorHandled       Status = "erro_processado"
)

// Terminal reports whether no further step runs after this status.
func (s Status) Terminal() bool {
	return s == StatusSummaryGenerated || s == StatusErrorHandled
}

// VideoState is the record threaded through every step. Steps receive it by
// value and return a modified copy; a state is never shared between steps.
type VideoState struct {
	URL        string  `json:"url"`
	VideoID    string  `json:"video_id"`
	Transcript string  `json:"transcript"`
	Summary    string  `json:"resumo"`
	Err        *string `json:"erro"`
	Status     Status  `json:"status"`
}

// NewVideoState returns the initial state for url.
func NewVideoState(url string) VideoState {
	return VideoState{URL: url, Status: StatusInitial}
}

// Succeeded reports whether the run produced a summary.
func (s VideoState) Succeeded() bool {
	return s.Status == StatusSummaryGenerated
}

// ErrMessage returns the error message or "" when none was recorded.
func (s VideoState) ErrMessage() string {
	if s.Err == nil {
		return ""
	}
	return *s.Err
}

func (s VideoState) withVideoID(id string) VideoState {
	s.VideoID = id
	s.Status = StatusIDExtracted
	return s
}

func (s VideoState) withTranscript(text string) VideoState {
	s.Transcript = text
	s.Status = StatusTranscriptObtained
	return s
}

func (s VideoState) withSummary(summary string) VideoState {
	s.Summary = summary
	s.Status = StatusSummaryGenerated
	return s
}

func (s VideoState) withError(msg string) VideoState {
	s.Err = &msg
	s.Status = StatusError
	return s
}

func (s VideoState) withStatus(status Status) VideoState {
	s.Status = status
	return s
}
