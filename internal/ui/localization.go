package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyReset             = "reset"
	KeyBuiltIn           = "built_in"
	KeyCustom            = "custom"
	KeyCreatePlaylist    = "create_playlist"
	KeyEditPlaylist      = "edit_playlist"
	KeyDeletePlaylist    = "delete_playlist"
	KeyConfirmDelete     = "confirm_delete"
	KeyPlaylistName      = "playlist_name"
	KeyDelayMs           = "delay_ms"
	KeySlides            = "slides"
	KeyAddSlide          = "add_slide"
	KeyEditSlide         = "edit_slide"
	KeySlideText         = "slide_text"
	KeyFontSize          = "font_size"
	KeyFontColor         = "font_color"
	KeyBackgroundColor   = "background_color"
	KeyFontFamily        = "font_family"
	KeyMaxPlaylists      = "max_playlists"
	KeyMaxSlides         = "max_slides"
	KeyNameRequired      = "name_required"
	KeySlideTextRequired = "slide_text_required"
	KeyInvalidNumber     = "invalid_number"
	KeyInvalidValue      = "invalid_value"
	KeyPlaylistMissing   = "playlist_missing"
	KeySaveFailed        = "save_failed"
	KeySettingsSaved     = "settings_saved"
	KeyPlaylistSaved     = "playlist_saved"
	KeyNoContent         = "no_content"
	KeyNoCustomPlaylists = "no_custom_playlists"
	KeyPlaybackDefaults  = "playback_defaults"
	KeyTapHint           = "tap_hint"
	KeyUnexpectedError   = "unexpected_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Nittu - Baby Flashcards",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyReset:             "Reset to defaults",
		KeyBuiltIn:           "Flashcards",
		KeyCustom:            "My playlists",
		KeyCreatePlaylist:    "+ Custom Playlist",
		KeyEditPlaylist:      "Edit Playlist",
		KeyDeletePlaylist:    "Delete Playlist",
		KeyConfirmDelete:     "Delete playlist \"%s\"?",
		KeyPlaylistName:      "Playlist name",
		KeyDelayMs:           "Autoplay Delay (ms)",
		KeySlides:            "Slides",
		KeyAddSlide:          "+ Add Slide",
		KeyEditSlide:         "Edit Slide",
		KeySlideText:         "Slide text",
		KeyFontSize:          "Font Size",
		KeyFontColor:         "Font Color",
		KeyBackgroundColor:   "Background Color",
		KeyFontFamily:        "Font Style",
		KeyMaxPlaylists:      "Maximum of 10 custom playlists reached.",
		KeyMaxSlides:         "Maximum of 30 slides reached.",
		KeyNameRequired:      "Please enter a playlist name.",
		KeySlideTextRequired: "Please enter slide text.",
		KeyInvalidNumber:     "Please enter a whole number.",
		KeyInvalidValue:      "Some values are not valid.",
		KeyPlaylistMissing:   "This playlist no longer exists.",
		KeySaveFailed:        "Could not save. Please try again.",
		KeySettingsSaved:     "Settings saved",
		KeyPlaylistSaved:     "Playlist saved",
		KeyNoContent:         "No content",
		KeyNoCustomPlaylists: "No custom playlists yet",
		KeyPlaybackDefaults:  "Playback defaults",
		KeyTapHint:           "Tap left or right, hold to pause",
		KeyUnexpectedError:   "Something went wrong.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Nittu - Карточки для малышей",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyReset:             "Сбросить настройки",
		KeyBuiltIn:           "Карточки",
		KeyCustom:            "Мои плейлисты",
		KeyCreatePlaylist:    "+ Свой плейлист",
		KeyEditPlaylist:      "Редактировать плейлист",
		KeyDeletePlaylist:    "Удалить плейлист",
		KeyConfirmDelete:     "Удалить плейлист «%s»?",
		KeyPlaylistName:      "Название плейлиста",
		KeyDelayMs:           "Задержка автопрокрутки (мс)",
		KeySlides:            "Слайды",
		KeyAddSlide:          "+ Добавить слайд",
		KeyEditSlide:         "Изменить слайд",
		KeySlideText:         "Текст слайда",
		KeyFontSize:          "Размер шрифта",
		KeyFontColor:         "Цвет шрифта",
		KeyBackgroundColor:   "Цвет фона",
		KeyFontFamily:        "Шрифт",
		KeyMaxPlaylists:      "Достигнут предел в 10 плейлистов.",
		KeyMaxSlides:         "Достигнут предел в 30 слайдов.",
		KeyNameRequired:      "Введите название плейлиста.",
		KeySlideTextRequired: "Введите текст слайда.",
		KeyInvalidNumber:     "Введите целое число.",
		KeyInvalidValue:      "Некоторые значения неверны.",
		KeyPlaylistMissing:   "Этот плейлист больше не существует.",
		KeySaveFailed:        "Не удалось сохранить. Попробуйте ещё раз.",
		KeySettingsSaved:     "Настройки сохранены",
		KeyPlaylistSaved:     "Плейлист сохранён",
		KeyNoContent:         "Нет содержимого",
		KeyNoCustomPlaylists: "Своих плейлистов пока нет",
		KeyPlaybackDefaults:  "Параметры показа",
		KeyTapHint:           "Нажмите слева или справа, удерживайте для паузы",
		KeyUnexpectedError:   "Что-то пошло не так.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Nittu - Cartões para Bebês",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyReset:             "Restaurar padrões",
		KeyBuiltIn:           "Cartões",
		KeyCustom:            "Minhas listas",
		KeyCreatePlaylist:    "+ Lista Personalizada",
		KeyEditPlaylist:      "Editar Lista",
		KeyDeletePlaylist:    "Excluir Lista",
		KeyConfirmDelete:     "Excluir a lista \"%s\"?",
		KeyPlaylistName:      "Nome da lista",
		KeyDelayMs:           "Atraso da reprodução (ms)",
		KeySlides:            "Slides",
		KeyAddSlide:          "+ Adicionar Slide",
		KeyEditSlide:         "Editar Slide",
		KeySlideText:         "Texto do slide",
		KeyFontSize:          "Tamanho da Fonte",
		KeyFontColor:         "Cor da Fonte",
		KeyBackgroundColor:   "Cor de Fundo",
		KeyFontFamily:        "Estilo da Fonte",
		KeyMaxPlaylists:      "Máximo de 10 listas personalizadas atingido.",
		KeyMaxSlides:         "Máximo de 30 slides atingido.",
		KeyNameRequired:      "Digite o nome da lista.",
		KeySlideTextRequired: "Digite o texto do slide.",
		KeyInvalidNumber:     "Digite um número inteiro.",
		KeyInvalidValue:      "Alguns valores não são válidos.",
		KeyPlaylistMissing:   "Esta lista não existe mais.",
		KeySaveFailed:        "Não foi possível salvar. Tente novamente.",
		KeySettingsSaved:     "Configurações salvas",
		KeyPlaylistSaved:     "Lista salva",
		KeyNoContent:         "Sem conteúdo",
		KeyNoCustomPlaylists: "Nenhuma lista personalizada ainda",
		KeyPlaybackDefaults:  "Padrões de reprodução",
		KeyTapHint:           "Toque à esquerda ou à direita, segure para pausar",
		KeyUnexpectedError:   "Algo deu errado.",
	}
}
