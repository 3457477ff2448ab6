package mmu

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

/***
	Tests are named as follows:
	Test{function}_{scenario}_{expectation}
***/

func TestMain(m *testing.M) {
	utils.InicializarLogger("error", "MMU-Test")
	os.Exit(m.Run())
}

// nuevaSimDePrueba arma una simulación chica: 4 marcos, 16 entradas por
// tabla, proceso inicial con PID 0
func nuevaSimDePrueba() *Simulacion {
	return NuevaSimulacion(ConfigMMU{
		CantidadMarcos:   4,
		EntradasPorTabla: 16,
	}, 0)
}

func TestNuevaSimulacion_EstadoInicial(t *testing.T) {
	s := nuevaSimDePrueba()

	assert.Equal(t, 0, s.ProcesoActual())
	assert.Empty(t, s.ProcesosListos())
	assert.Equal(t, 4, s.MarcosLibres())

	_, existe := s.BuscarEntrada(0)
	assert.False(t, existe, "la tabla inicial no debe tener directorios")
}

func TestTablaActiva_SigueAlProcesoActual(t *testing.T) {
	s := nuevaSimDePrueba()

	tablaPadre := s.TablaActiva()
	assert.NotNil(t, tablaPadre)

	s.CambiarProceso(7)
	tablaHijo := s.TablaActiva()
	assert.NotSame(t, tablaPadre, tablaHijo, "el puntero base debe apuntar a la tabla del hijo")
}
