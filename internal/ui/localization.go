package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyTitleLoading    = "title_loading"
	KeyTitleErrored    = "title_errored"
	KeyTitleSaving     = "title_saving"
	KeyTitleSaved      = "title_saved"
	KeySearching       = "searching"
	KeyKeepSearching   = "keep_searching"
	KeySaveDog         = "save_dog"
	KeySomethingWrong  = "something_wrong"
	KeyTryAgain        = "try_again"
	KeySaving          = "saving"
	KeyDogSaved        = "dog_saved"
	KeyFindAnother     = "find_another"
	KeyShowInFolder    = "show_in_folder"
	KeyCannotDisplay   = "cannot_display"
	KeyErrorOpeningDir = "error_opening_dir"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyRevealAfterSave = "reveal_after_save"
	KeySave            = "save"
	KeyCancel          = "cancel"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Random Dog",
		KeyTitleLoading:    "Loading",
		KeyTitleErrored:    "Something went wrong!",
		KeyTitleSaving:     "Saving",
		KeyTitleSaved:      "Dog saved on your computer",
		KeySearching:       "Searching for Dog...",
		KeyKeepSearching:   "Keep searching!",
		KeySaveDog:         "Save this dog",
		KeySomethingWrong:  "Something is not right...",
		KeyTryAgain:        "Try again",
		KeySaving:          "Saving...",
		KeyDogSaved:        "Dog saved on your computer",
		KeyFindAnother:     "Find another dog",
		KeyShowInFolder:    "Show in folder",
		KeyCannotDisplay:   "This dog could not be displayed",
		KeyErrorOpeningDir: "Error opening folder",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyRevealAfterSave: "Open folder after saving",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Случайная собака",
		KeyTitleLoading:    "Загрузка",
		KeyTitleErrored:    "Что-то пошло не так!",
		KeyTitleSaving:     "Сохранение",
		KeyTitleSaved:      "Собака сохранена на компьютере",
		KeySearching:       "Ищем собаку...",
		KeyKeepSearching:   "Искать дальше!",
		KeySaveDog:         "Сохранить эту собаку",
		KeySomethingWrong:  "Что-то не так...",
		KeyTryAgain:        "Попробовать снова",
		KeySaving:          "Сохранение...",
		KeyDogSaved:        "Собака сохранена на компьютере",
		KeyFindAnother:     "Найти другую собаку",
		KeyShowInFolder:    "Показать в папке",
		KeyCannotDisplay:   "Не удалось показать эту собаку",
		KeyErrorOpeningDir: "Ошибка открытия папки",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyRevealAfterSave: "Открывать папку после сохранения",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Cão Aleatório",
		KeyTitleLoading:    "Carregando",
		KeyTitleErrored:    "Algo deu errado!",
		KeyTitleSaving:     "Salvando",
		KeyTitleSaved:      "Cão salvo no seu computador",
		KeySearching:       "Procurando um cão...",
		KeyKeepSearching:   "Continuar procurando!",
		KeySaveDog:         "Salvar este cão",
		KeySomethingWrong:  "Algo não está certo...",
		KeyTryAgain:        "Tentar novamente",
		KeySaving:          "Salvando...",
		KeyDogSaved:        "Cão salvo no seu computador",
		KeyFindAnother:     "Encontrar outro cão",
		KeyShowInFolder:    "Mostrar na pasta",
		KeyCannotDisplay:   "Não foi possível exibir este cão",
		KeyErrorOpeningDir: "Erro ao abrir a pasta",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyRevealAfterSave: "Abrir pasta após salvar",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
	}
}
