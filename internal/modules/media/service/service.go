package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"

	"careerbridge.org/jobfairhub/internal/modules/media/dto"
	"careerbridge.org/jobfairhub/pkg/apperror"
)

// MediaService chains the two external AI calls behind the video enhancement
// page: transcription of extracted audio, then voiceover synthesis.
type MediaService interface {
	Transcribe(ctx context.Context, req dto.TranscribeRequest) (*dto.TranscribeResponse, error)
	GenerateVoiceover(ctx context.Context, req dto.VoiceoverRequest) (*dto.VoiceoverResponse, error)
}

type mediaService struct {
	transcriber Transcriber
	speech      SpeechSynthesizer
}

func NewMediaService(transcriber Transcriber, speech SpeechSynthesizer) MediaService {
	return &mediaService{
		transcriber: transcriber,
		speech:      speech,
	}
}

func (s *mediaService) Transcribe(ctx context.Context, req dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return nil, apperror.New(400, "audio must be base64 encoded", err)
	}

	text, err := s.transcriber.Transcribe(ctx, audio, req.MimeType)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", apperror.ErrUpstream)
	}

	return &dto.TranscribeResponse{Text: text}, nil
}

func (s *mediaService) GenerateVoiceover(ctx context.Context, req dto.VoiceoverRequest) (*dto.VoiceoverResponse, error) {
	if !slices.Contains(dto.Voices, req.Voice) {
		return nil, apperror.New(400, "unknown voice: "+req.Voice, apperror.ErrInvalidInput)
	}

	audio, err := s.speech.Synthesize(ctx, req.Text, req.Voice)
	if err != nil {
		return nil, fmt.Errorf("voiceover generation failed: %w", apperror.ErrUpstream)
	}

	return &dto.VoiceoverResponse{
		AudioContent: base64.StdEncoding.EncodeToString(audio),
	}, nil
}
