package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lxzugm-boop/lastframe-bot/internal/prefs"
)

const (
	startText = "Привет! Пришли мне видео, видеосообщение (кружок) или GIF — " +
		"я вытащу из него последний кадр и пришлю картинкой.\n\n" +
		"Формат и размер картинки настраиваются кнопками под ответом.\n" +
		"Команда /help — подробности."

	helpText = "Как пользоваться:\n" +
		"1. Пришли видео, кружок или GIF.\n" +
		"2. Я пришлю последний кадр картинкой.\n" +
		"3. Кнопками под картинкой можно поменять формат (PNG / JPG / WEBP) " +
		"и размер, а затем нажать «🔁 Перегенерировать» — я сделаю кадр заново " +
		"из последнего присланного видео."

	fallbackText = "Я умею работать только с видео, видеосообщениями (кружками) и GIF. " +
		"Пришли ролик — и я вытащу из него последний кадр 🎥"
)

// sizeDescriptions are the human labels used in captions and acks.
var sizeDescriptions = map[prefs.Size]string{
	prefs.SizeOrig:   "оригинальное разрешение",
	prefs.Size1024:   "большая сторона 1024 px",
	prefs.Size1024Sq: "квадрат 1024×1024 (кроп по центру)",
}

func describeSize(size prefs.Size) string {
	return sizeDescriptions[prefs.NormalizeSize(string(size))]
}

// frameCaption renders the reply caption with the settings the frame was
// produced with.
func frameCaption(lead string, format prefs.Format, size prefs.Size) string {
	return fmt.Sprintf("%s\n\nФормат: %s\nРазмер: %s",
		lead, strings.ToUpper(string(format)), describeSize(size))
}

// settingsKeyboard builds the inline keyboard attached to every frame
// reply. The active format and size carry a check mark.
func settingsKeyboard(format prefs.Format, size prefs.Size) tgbotapi.InlineKeyboardMarkup {
	formatRow := make([]tgbotapi.InlineKeyboardButton, 0, 3)
	for _, f := range []prefs.Format{prefs.FormatPNG, prefs.FormatJPG, prefs.FormatWEBP} {
		label := strings.ToUpper(string(f))
		if f == format {
			label += " ✅"
		}
		formatRow = append(formatRow, tgbotapi.NewInlineKeyboardButtonData(label, "fmt:"+string(f)))
	}

	sizeRow := make([]tgbotapi.InlineKeyboardButton, 0, 3)
	for _, s := range []struct {
		size  prefs.Size
		label string
	}{
		{prefs.SizeOrig, "Оригинал"},
		{prefs.Size1024, "1024 px"},
		{prefs.Size1024Sq, "Квадрат 1024×1024"},
	} {
		label := s.label
		if s.size == size {
			label += " ✅"
		}
		sizeRow = append(sizeRow, tgbotapi.NewInlineKeyboardButtonData(label, "size:"+string(s.size)))
	}

	regenRow := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🔁 Перегенерировать", "regen"),
	}

	return tgbotapi.NewInlineKeyboardMarkup(formatRow, sizeRow, regenRow)
}
