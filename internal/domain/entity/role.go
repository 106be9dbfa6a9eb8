package entity

import "strings"

// Role rol del usuario autenticado, tal como lo reporta el backend.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// ParseRole normaliza el rol recibido del backend (llega con mayúsculas
// inconsistentes según el endpoint). Un rol desconocido se conserva tal
// cual: el backend sigue siendo quien autoriza.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	case "user":
		return RoleUser
	default:
		return Role(strings.ToLower(strings.TrimSpace(s)))
	}
}

// Action acción de mutación que una vista puede ofrecer.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Capability indica si la vista debe renderizar el control de la acción.
// Hoy las tres acciones comparten la misma regla (manager o admin).
// Es solo conveniencia de presentación: la autorización real la aplica
// el backend en cada petición.
func Capability(role Role, action Action) bool {
	switch action {
	case ActionAdd, ActionEdit, ActionDelete:
		return role == RoleManager || role == RoleAdmin
	default:
		return false
	}
}
