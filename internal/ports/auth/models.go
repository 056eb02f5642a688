package auth

// Claims representa la identidad extraída del token (o de los headers
// de debug en modo dev). Rol viaja como string crudo; el paquete usuarios
// lo valida contra los roles canónicos.
type Claims struct {
	UserID        string
	NombreUsuario string
	Rol           string
}
