package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCambiarProceso_PIDEnCola_CambiaContexto(t *testing.T) {
	s := nuevaSimDePrueba()

	s.CambiarProceso(2) // fork, el 0 queda en la cola
	assert.Equal(t, 2, s.ProcesoActual())
	assert.Equal(t, []int{0}, s.ProcesosListos())

	s.CambiarProceso(0)
	assert.Equal(t, 0, s.ProcesoActual())
	assert.Equal(t, []int{2}, s.ProcesosListos())
	assert.Equal(t, 1, s.Metricas(0).CambiosContexto)
}

func TestCambiarProceso_Fork_DegradaAlPadre(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.AsignarPagina(5, PermisoLectura)

	s.CambiarProceso(2)
	s.CambiarProceso(0) // volver para inspeccionar al padre

	// La entrada escribible del padre quedó degradada a privada
	entrada, _ := s.BuscarEntrada(0)
	assert.False(t, entrada.Escribible)
	assert.True(t, entrada.Privada)

	// La entrada de solo lectura se comparte sin marcarse privada
	entrada, _ = s.BuscarEntrada(5)
	assert.False(t, entrada.Escribible)
	assert.False(t, entrada.Privada)
}

func TestCambiarProceso_Fork_ElHijoCopiaLaTablaDegradada(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.AsignarPagina(17, PermisoLectura|PermisoEscritura) // otro directorio
	s.AsignarPagina(5, PermisoLectura)

	s.CambiarProceso(2)
	assert.Equal(t, 2, s.ProcesoActual())

	for _, vpn := range []int{0, 17} {
		entrada, existe := s.BuscarEntrada(vpn)
		assert.True(t, existe, "vpn %d", vpn)
		assert.True(t, entrada.Valido)
		assert.False(t, entrada.Escribible)
		assert.True(t, entrada.Privada)
	}

	entrada, _ := s.BuscarEntrada(5)
	assert.True(t, entrada.Valido)
	assert.False(t, entrada.Privada)

	// Cada marco del padre suma el mapeo del hijo
	assert.Equal(t, 2, s.ContadorMapeos(0))
	assert.Equal(t, 2, s.ContadorMapeos(1))
	assert.Equal(t, 2, s.ContadorMapeos(2))
	assert.Equal(t, 1, s.Metricas(2).Forks)
}

func TestCambiarProceso_Fork_LasTablasSonIndependientes(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.CambiarProceso(2)

	// Liberar en el hijo no toca la entrada del padre
	s.LiberarPagina(0)
	assert.Equal(t, 1, s.ContadorMapeos(0))

	s.CambiarProceso(0)
	entrada, _ := s.BuscarEntrada(0)
	assert.True(t, entrada.Valido)
	assert.Equal(t, 0, entrada.Marco)
}

// Escenario completo de copy-on-write con 4 marcos libres
func TestEscenario_ForkYPrimeraEscritura(t *testing.T) {
	s := nuevaSimDePrueba()

	marco, err := s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	assert.Nil(t, err)
	assert.Equal(t, 0, marco)

	// Fork del proceso 2: comparte el marco 0 con el padre
	s.CambiarProceso(2)
	assert.Equal(t, 2, s.ContadorMapeos(0))

	entradaHijo, _ := s.BuscarEntrada(0)
	assert.True(t, entradaHijo.Valido)
	assert.False(t, entradaHijo.Escribible)
	assert.True(t, entradaHijo.Privada)
	assert.Equal(t, 0, entradaHijo.Marco)

	// Primera escritura del hijo: duplica al marco 1
	err = s.AtenderFallo(0, PermisoLectura|PermisoEscritura)
	assert.Nil(t, err)

	entradaHijo, _ = s.BuscarEntrada(0)
	assert.True(t, entradaHijo.Escribible)
	assert.Equal(t, 1, entradaHijo.Marco)
	assert.Equal(t, 1, s.ContadorMapeos(0))
	assert.Equal(t, 1, s.ContadorMapeos(1))

	// El padre no se ve afectado por la duplicación del hijo
	s.CambiarProceso(0)
	entradaPadre, _ := s.BuscarEntrada(0)
	assert.True(t, entradaPadre.Valido)
	assert.False(t, entradaPadre.Escribible)
	assert.True(t, entradaPadre.Privada)
	assert.Equal(t, 0, entradaPadre.Marco)
}
