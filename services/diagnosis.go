package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"MediBook/apperrors"
	"MediBook/constants"

	openai "github.com/sashabaranov/go-openai"
)

const diagnosisTimeout = 30 * time.Second

const diagnosisPrompt = "A patient reports the following symptoms: %s. " +
	"What conditions could these symptoms indicate, and should the patient see a doctor?"

// DiagnosisService wraps the external text-completion collaborator.
// The configured client is injected at wiring time, not held in package state.
type DiagnosisService struct {
	client *openai.Client
}

func NewDiagnosisService(apiKey string) *DiagnosisService {
	return &DiagnosisService{
		client: openai.NewClient(apiKey),
	}
}

/*
* Embed the free-text symptoms in the fixed prompt
* One completion call, raw text back, no retry and no post-processing
* Bounded by a request-scoped timeout
 */
func (s *DiagnosisService) Diagnose(ctx context.Context, symptoms string) (string, error) {
	if strings.TrimSpace(symptoms) == "" {
		return "", apperrors.Validation("symptoms are required")
	}
	ctx, cancel := context.WithTimeout(ctx, diagnosisTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(diagnosisPrompt, symptoms),
			},
		},
	})
	if err != nil {
		log.Println("Error from createChatCompletion: ", err)
		return "", apperrors.Upstream(constants.DIAGNOSIS_CALL_FAILED)
	}
	if len(resp.Choices) == 0 {
		log.Println("Empty completion response")
		return "", apperrors.Upstream(constants.DIAGNOSIS_CALL_FAILED)
	}
	return resp.Choices[0].Message.Content, nil
}
