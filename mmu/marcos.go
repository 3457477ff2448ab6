package mmu

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// AsignarPagina busca el marco libre de menor número y lo mapea a la
// página del proceso actual, creando el directorio del rango si no
// existe. La entrada queda válida, escribible según el permiso, y el
// contador de mapeos del marco se incrementa. Si no hay marcos libres
// devuelve ErrSinMarcos sin modificar nada.
func (s *Simulacion) AsignarPagina(vpn int, permiso int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.asignarPagina(vpn, permiso)
}

func (s *Simulacion) asignarPagina(vpn int, permiso int) (int, error) {
	if !s.vpnValido(vpn) {
		return 0, fmt.Errorf("página %d fuera del espacio direccionable", vpn)
	}

	marco := -1
	for i, mapeos := range s.contadorMapeos {
		if mapeos == 0 {
			marco = i
			break
		}
	}
	if marco == -1 {
		utils.ErrorLog.Error("No hay marcos libres disponibles",
			"pid", s.procesoActual.PID, "vpn", vpn)
		return 0, ErrSinMarcos
	}

	indiceExterno := vpn / s.config.EntradasPorTabla
	pos := vpn % s.config.EntradasPorTabla

	tabla := &s.procesoActual.Tabla
	if tabla.Directorios[indiceExterno] == nil {
		tabla.Directorios[indiceExterno] = s.nuevoDirectorio()
		utils.InfoLog.Info("Directorio creado", "pid", s.procesoActual.PID,
			"indice_externo", indiceExterno)
	}

	// La entrada conserva su bit Privada: una asignación nueva no lo toca
	entrada := &tabla.Directorios[indiceExterno].Entradas[pos]
	entrada.Valido = true
	entrada.Escribible = permiso&PermisoEscritura != 0
	entrada.Marco = marco

	s.contadorMapeos[marco]++
	s.metricas(s.procesoActual.PID).AsignacionesMarco++

	utils.InfoLog.Info("Marco asignado", "pid", s.procesoActual.PID,
		"vpn", vpn, "marco", marco, "escribible", entrada.Escribible)

	return marco, nil
}

// LiberarPagina desmapea la página del proceso actual: decrementa el
// contador del marco referido (nunca por debajo de cero) y deja la
// entrada en su estado inicial. Liberar una página nunca mapeada es un
// no-op.
func (s *Simulacion) LiberarPagina(vpn int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.vpnValido(vpn) {
		return
	}

	directorio := s.procesoActual.Tabla.Directorios[vpn/s.config.EntradasPorTabla]
	if directorio == nil {
		return
	}

	entrada := &directorio.Entradas[vpn%s.config.EntradasPorTabla]
	if !entrada.Valido {
		return
	}

	if s.contadorMapeos[entrada.Marco] > 0 {
		s.contadorMapeos[entrada.Marco]--
	}
	s.metricas(s.procesoActual.PID).LiberacionesPagina++

	utils.InfoLog.Info("Página liberada", "pid", s.procesoActual.PID,
		"vpn", vpn, "marco", entrada.Marco,
		"mapeos_restantes", s.contadorMapeos[entrada.Marco])

	// Cada proceso es dueño de sus entradas: se limpia la propia aunque
	// otro proceso siga mapeando el mismo marco
	*entrada = EntradaPagina{}
}
