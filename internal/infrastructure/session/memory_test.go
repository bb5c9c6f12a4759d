package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/internal/infrastructure/session"
)

func TestStore_CreateGetDestroy(t *testing.T) {
	s := session.NewStore(time.Hour, time.Hour)
	defer s.Close()

	id := s.Create("user-1")
	require.NotEmpty(t, id)

	userID, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	s.Destroy(id)
	_, ok = s.Get(id)
	assert.False(t, ok, "una sesión destruida no debe resolver")
}

func TestStore_SesionDesconocida(t *testing.T) {
	s := session.NewStore(time.Hour, time.Hour)
	defer s.Close()

	_, ok := s.Get("no-existe")
	assert.False(t, ok)
}

// La expiración se verifica pasivamente en cada lectura, sin depender del barrido.
func TestStore_ExpiracionPasiva(t *testing.T) {
	s := session.NewStore(20*time.Millisecond, time.Hour)
	defer s.Close()

	id := s.Create("user-1")
	_, ok := s.Get(id)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.Get(id)
	assert.False(t, ok, "la sesión expirada se comporta como anónima")
	assert.Equal(t, 0, s.Len(), "la lectura elimina la entrada expirada")
}

// El barrido periódico limpia entradas expiradas que nadie vuelve a leer.
func TestStore_BarridoPeriodico(t *testing.T) {
	s := session.NewStore(10*time.Millisecond, 20*time.Millisecond)
	defer s.Close()

	s.Create("user-1")
	s.Create("user-2")

	assert.Eventually(t, func() bool { return s.Len() == 0 },
		time.Second, 10*time.Millisecond, "el barrido debe vaciar las sesiones expiradas")
}

func TestStore_IdsUnicos(t *testing.T) {
	s := session.NewStore(time.Hour, time.Hour)
	defer s.Close()

	a := s.Create("user-1")
	b := s.Create("user-1")
	assert.NotEqual(t, a, b, "dos logins generan sesiones independientes")
}

// Cerrar dos veces no entra en pánico: el apagado ordenado y un defer pueden
// coincidir sobre el mismo store.
func TestStore_CloseEsIdempotente(t *testing.T) {
	s := session.NewStore(time.Hour, time.Hour)

	s.Close()
	assert.NotPanics(t, s.Close)
}
