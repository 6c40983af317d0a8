package dto

type TranscribeRequest struct {
	Audio    string `json:"audio" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}

type VoiceoverRequest struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice" binding:"required"`
}

type VoiceoverResponse struct {
	AudioContent string `json:"audio_content"`
}

// Voices supported by the speech-synthesis service.
var Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
