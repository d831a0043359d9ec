package summaries

type summarizeRequest struct {
	URL string `json:"url"`
}

// SummarizeResponse is the summarize endpoint payload.
type SummarizeResponse struct {
	Success      bool   `json:"success"`
	URL          string `json:"url"`
	Summary      string `json:"summary"`
	FullText     string `json:"fullText"`
	Translated   string `json:"translated"`
	PostSaved    bool   `json:"postSaved"`
	SummarySaved bool   `json:"summarySaved"`
}

func toSummarizeResponse(res Result) SummarizeResponse {
	return SummarizeResponse{
		Success:      true,
		URL:          res.URL,
		Summary:      res.Summary,
		FullText:     res.FullText,
		Translated:   res.Translated,
		PostSaved:    res.PostSaved,
		SummarySaved: res.SummarySaved,
	}
}
