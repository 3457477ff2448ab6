package mmu

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// AtenderFallo resuelve un fallo de página sobre la página del proceso
// actual. Lo invoca el traductor de direcciones cuando no puede resolver
// la página por sí mismo: directorio inexistente, entrada inválida, o
// escritura sobre una entrada no escribible.
//
// Devuelve nil cuando el fallo quedó resuelto y el acceso puede
// reintentarse; ErrAccesoDenegado cuando el acceso es una violación de
// protección genuina; ErrSinMarcos si la resolución necesitaba un marco
// y no quedaba ninguno libre.
func (s *Simulacion) AtenderFallo(vpn int, permiso int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.procesoActual == nil {
		return fmt.Errorf("no hay proceso en ejecución")
	}

	if !s.vpnValido(vpn) {
		return fmt.Errorf("página %d fuera del espacio direccionable", vpn)
	}

	pid := s.procesoActual.PID
	s.metricas(pid).FallosAtendidos++

	directorio := s.procesoActual.Tabla.Directorios[vpn/s.config.EntradasPorTabla]

	// Directorio inexistente: primer acceso al rango
	if directorio == nil {
		utils.InfoLog.Info("Fallo por directorio inexistente", "pid", pid, "vpn", vpn)
		_, err := s.asignarPagina(vpn, permiso)
		return err
	}

	entrada := &directorio.Entradas[vpn%s.config.EntradasPorTabla]

	// Entrada inválida: página aún no asignada
	if !entrada.Valido {
		utils.InfoLog.Info("Fallo por entrada inválida", "pid", pid, "vpn", vpn)
		_, err := s.asignarPagina(vpn, permiso)
		return err
	}

	// Entrada válida: solo una escritura sobre página no escribible llega acá
	if permiso&PermisoEscritura != 0 && !entrada.Escribible {
		if !entrada.Privada {
			utils.ErrorLog.Error("Violación de protección", "pid", pid,
				"vpn", vpn, "marco", entrada.Marco)
			return ErrAccesoDenegado
		}
		return s.resolverCopyOnWrite(vpn, entrada)
	}

	// El traductor no debería derivar otra combinación; se deja resuelto
	return nil
}

// resolverCopyOnWrite atiende la escritura sobre una página privada.
// Si el marco sigue compartido se duplica: el fallante suelta su mapeo y
// recibe un marco nuevo con permiso de escritura. Si es el único dueño
// se promueve la entrada en el lugar, sin asignar nada.
//
// El otro dueño de un marco que quedó con un solo mapeo NO se promueve:
// conserva su entrada privada y de solo lectura hasta que él mismo
// falle por escritura.
func (s *Simulacion) resolverCopyOnWrite(vpn int, entrada *EntradaPagina) error {
	pid := s.procesoActual.PID
	marco := entrada.Marco

	if s.contadorMapeos[marco] > 1 {
		s.contadorMapeos[marco]--

		nuevoMarco, err := s.asignarPagina(vpn, PermisoLectura|PermisoEscritura)
		if err != nil {
			return err
		}

		s.metricas(pid).DuplicacionesCOW++
		utils.InfoLog.Info(fmt.Sprintf("## PID: %d - COW duplicada - Página: %d - Marco: %d -> %d",
			pid, vpn, marco, nuevoMarco))
		return nil
	}

	// Único dueño: se recupera la escritura sin mover la página
	entrada.Escribible = true
	entrada.Privada = false
	s.metricas(pid).PromocionesCOW++

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - COW promovida - Página: %d - Marco: %d",
		pid, vpn, marco))
	return nil
}
