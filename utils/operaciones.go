package utils

import (
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado de acceso y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Info("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// ExtraerEntero obtiene un campo numérico de los datos de un mensaje.
// Los números llegan como float64 por la decodificación JSON.
func ExtraerEntero(msg *Mensaje, campo string) (int, bool) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return 0, false
	}

	switch valor := datos[campo].(type) {
	case float64:
		return int(valor), true
	case int:
		return valor, true
	}
	return 0, false
}

// ExtraerCadena obtiene un campo de texto de los datos de un mensaje
func ExtraerCadena(msg *Mensaje, campo string) (string, bool) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return "", false
	}

	valor, ok := datos[campo].(string)
	return valor, ok
}
