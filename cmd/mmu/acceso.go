package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/mmu"
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// simularAcceso traduce un acceso a la página del proceso actual. La MMU
// no camina la tabla por sí misma: el traductor decide acá cuándo hay
// fallo (directorio inexistente, entrada inválida o escritura sobre
// página no escribible), lo deriva a AtenderFallo y reintenta el acceso.
// Devuelve el marco resuelto.
func simularAcceso(vpn int, permiso int) (int, error) {
	pid := simulacion.ProcesoActual()

	for intento := 0; intento < 2; intento++ {
		entrada, ok := simulacion.BuscarEntrada(vpn)

		if ok && entrada.Valido && (permiso&mmu.PermisoEscritura == 0 || entrada.Escribible) {
			utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Acción: %s - Página: %d - Marco: %d",
				pid, nombreAccion(permiso), vpn, entrada.Marco))
			return entrada.Marco, nil
		}

		utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Page Fault - Página: %d", pid, vpn))
		if err := simulacion.AtenderFallo(vpn, permiso); err != nil {
			return -1, err
		}
	}

	// Un fallo resuelto garantiza que el reintento traduce
	return -1, fmt.Errorf("el acceso a la página %d no quedó resuelto", vpn)
}

func nombreAccion(permiso int) string {
	if permiso&mmu.PermisoEscritura != 0 {
		return "ESCRIBIR"
	}
	return "LEER"
}
