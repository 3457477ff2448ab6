package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolcarEstado_GeneraArchivoLegible(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.AsignarPagina(17, PermisoLectura)
	s.CambiarProceso(2)

	ruta, err := s.VolcarEstado(t.TempDir())
	assert.Nil(t, err)
	assert.NotEmpty(t, ruta)

	volcado, err := LeerVolcado(ruta)
	assert.Nil(t, err)

	assert.Equal(t, 2, volcado.ProcesoActual.PID)
	assert.Len(t, volcado.ProcesoActual.Paginas, 2)
	assert.Len(t, volcado.ColaListos, 1)
	assert.Equal(t, 0, volcado.ColaListos[0].PID)
	assert.Equal(t, []int{2, 2, 0, 0}, volcado.ContadorMapeos)

	// Las páginas del volcado conservan VPN y flags post-fork
	paginas := map[int]VolcadoPagina{}
	for _, p := range volcado.ProcesoActual.Paginas {
		paginas[p.VPN] = p
	}
	assert.True(t, paginas[0].Privada)
	assert.False(t, paginas[17].Privada)
	assert.Equal(t, 0, paginas[0].Marco)
	assert.Equal(t, 1, paginas[17].Marco)
}

func TestLeerVolcado_ArchivoInexistente_Fail(t *testing.T) {
	_, err := LeerVolcado("no-existe.dmp")
	assert.NotNil(t, err)
}
