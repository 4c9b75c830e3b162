// Package transfer materializes inbound Telegram media as transient
// local files for the frame extractor.
package transfer

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrNoSupportedMedia is returned when a message carries none of the
// recognized media kinds.
var ErrNoSupportedMedia = errors.New("transfer: message carries no supported video media")

// Kind identifies which video-like media a message carried.
type Kind int

// Recognized media kinds.
const (
	KindVideo Kind = iota
	KindVideoNote
	KindAnimation
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindVideoNote:
		return "video_note"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Media is the resolved download handle for one inbound message.
// Resolution happens once at ingestion; everything downstream works
// with the uniform FileID.
type Media struct {
	Kind   Kind
	FileID string
}

// FromMessage resolves the video-like media attached to a message.
// Exactly one of video, video note, or animation is expected; messages
// without any of the three fail with ErrNoSupportedMedia.
func FromMessage(msg *tgbotapi.Message) (Media, error) {
	switch {
	case msg.Video != nil:
		return Media{Kind: KindVideo, FileID: msg.Video.FileID}, nil
	case msg.VideoNote != nil:
		return Media{Kind: KindVideoNote, FileID: msg.VideoNote.FileID}, nil
	case msg.Animation != nil:
		return Media{Kind: KindAnimation, FileID: msg.Animation.FileID}, nil
	default:
		return Media{}, ErrNoSupportedMedia
	}
}
