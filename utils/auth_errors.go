package utils

// Kodovi grešaka prijave koje backend vraća klijentu. Tabela preslikava
// kod u poruku za korisnika; nemapiran kod pada na generičku poruku.
const (
	AuthCodeInvalidCredential = "auth/invalid-credential"
	AuthCodeUserNotFound      = "auth/user-not-found"
	AuthCodeWrongPassword     = "auth/wrong-password"
	AuthCodeEmailInUse        = "auth/email-already-in-use"
	AuthCodeWeakPassword      = "auth/weak-password"
	AuthCodeInvalidEmail      = "auth/invalid-email"
	AuthCodeTooManyRequests   = "auth/too-many-requests"
	AuthCodeNetworkFailed     = "auth/network-request-failed"
	AuthCodePopupClosed       = "auth/popup-closed-by-user"
	AuthCodeUserDisabled      = "auth/user-disabled"
)

const genericAuthMessage = "Ocurrió un error inesperado. Inténtalo de nuevo."

var authErrorMessages = map[string]string{
	AuthCodeInvalidCredential: "Credenciales incorrectas. Verifica tu correo y contraseña.",
	AuthCodeUserNotFound:      "No existe una cuenta con ese correo electrónico.",
	AuthCodeWrongPassword:     "La contraseña es incorrecta.",
	AuthCodeEmailInUse:        "Ya existe una cuenta con ese correo electrónico.",
	AuthCodeWeakPassword:      "La contraseña debe tener al menos 6 caracteres.",
	AuthCodeInvalidEmail:      "El correo electrónico no es válido.",
	AuthCodeTooManyRequests:   "Demasiados intentos. Espera un momento e inténtalo de nuevo.",
	AuthCodeNetworkFailed:     "Error de red. Revisa tu conexión.",
	AuthCodePopupClosed:       "La ventana de inicio de sesión se cerró antes de completar.",
	AuthCodeUserDisabled:      "Esta cuenta ha sido deshabilitada.",
}

// AuthErrorMessage vraća lokalizovanu poruku za kod greške prijave.
// Nepoznat kod nikad ne vraća prazan string.
func AuthErrorMessage(code string) string {
	if msg, ok := authErrorMessages[code]; ok {
		return msg
	}
	return genericAuthMessage
}
