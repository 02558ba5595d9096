package agent

import (
	"context"
	"fmt"
	"unicode/utf8"
)

const (
	maxTranscriptChars = 50000
	truncationMarker   = "..."
)

const summaryPrompt = `
Você é um especialista em resumir vídeos do YouTube. Sua tarefa é analisar a transcrição fornecida e criar um resumo estruturado com os principais pontos.

Transcrição do vídeo:
%s

Por favor, forneça um resumo seguindo esta estrutura:

## 📝 RESUMO EXECUTIVO
(Um parágrafo conciso com a essência do vídeo)

## 🎯 PRINCIPAIS PONTOS
(Lista dos 5-7 pontos mais importantes, numerados)

## 💡 INSIGHTS CHAVE
(Ideias e conceitos mais relevantes)

## 📊 DADOS E ESTATÍSTICAS
(Números, percentuais ou dados mencionados, se houver)

## 🎬 CONCLUSÃO
(Síntese final e principais takeaways)

Mantenha o resumo informativo, bem estruturado e fácil de ler.
`

// generateSummary prompts the generator with the (possibly truncated) transcript.
func (a *implAgent) generateSummary(ctx context.Context, state VideoState) VideoState {
	text, truncated := truncateTranscript(state.Transcript)
	if truncated {
		a.logger.Warn(ctx, "Transcript truncated to %d characters", maxTranscriptChars)
	}

	summary, err := guard(func() (string, error) {
		return a.generator.Generate(ctx, buildPrompt(text))
	})
	if err != nil {
		a.logger.Error(ctx, "Summary generation failed for %s: %v", state.VideoID, err)
		return state.withError(fmt.Sprintf("error generating summary: %v", err))
	}

	a.logger.Info(ctx, "Summary generated for %s (%d bytes)", state.VideoID, len(summary))
	return state.withSummary(summary)
}

func buildPrompt(transcript string) string {
	return fmt.Sprintf(summaryPrompt, transcript)
}

// truncateTranscript keeps the first maxTranscriptChars characters and appends
// the marker when the transcript is longer than that.
func truncateTranscript(s string) (string, bool) {
	if utf8.RuneCountInString(s) <= maxTranscriptChars {
		return s, false
	}

	n := 0
	for i := range s {
		if n == maxTranscriptChars {
			return s[:i] + truncationMarker, true
		}
		n++
	}
	return s, false
}
