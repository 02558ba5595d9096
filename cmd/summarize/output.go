package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/agent"
)

var rule = strings.Repeat("=", 50)

// printResult writes the summary, or the error message of a failed run.
func printResult(w io.Writer, state agent.VideoState) error {
	var err error
	if state.Succeeded() {
		_, err = fmt.Fprintf(w, "✅ Resumo gerado com sucesso!\n\n%s\n%s\n%s\n", rule, state.Summary, rule)
	} else {
		_, err = fmt.Fprintf(w, "❌ Erro ao processar vídeo:\n%s\n", state.ErrMessage())
	}
	return err
}

type jsonResult struct {
	RunKey string           `json:"run_key"`
	State  agent.VideoState `json:"state"`
}

func printJSON(w io.Writer, key string, state agent.VideoState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{RunKey: key, State: state})
}
