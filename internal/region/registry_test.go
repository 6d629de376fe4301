package region

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "loanmap/pkg/domain-errors"
)

type RegistrySuite struct {
	suite.Suite
	registry *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.registry = Default()
}

func (s *RegistrySuite) TestDefaultTable() {
	s.Equal(59, s.registry.Len())

	with := 0
	for _, info := range s.registry.All() {
		if info.HasPopulation() {
			with++
		}
	}
	s.Equal(52, with, "50 states, DC and Puerto Rico carry population")
}

func (s *RegistrySuite) TestLookups() {
	s.Run("by name", func() {
		info, ok := s.registry.ByName("California")
		s.Require().True(ok)
		s.Equal("CA", info.Code)
	})

	s.Run("by code", func() {
		info, ok := s.registry.ByCode("TX")
		s.Require().True(ok)
		s.Equal("Texas", info.Name)
	})

	s.Run("population", func() {
		p, ok := s.registry.Population("CA")
		s.True(ok)
		s.Equal(int64(37254522), p)
	})

	s.Run("territory without population", func() {
		_, ok := s.registry.Population("GU")
		s.False(ok)
		info, found := s.registry.ByCode("GU")
		s.True(found)
		s.False(info.HasPopulation())
	})

	s.Run("unknown code and name", func() {
		_, ok := s.registry.Population("ZZ")
		s.False(ok)
		_, ok = s.registry.ByName("Atlantis")
		s.False(ok)
	})

	s.Run("nil registry finds nothing", func() {
		var r *Registry
		_, ok := r.ByCode("CA")
		s.False(ok)
		_, ok = r.ByName("California")
		s.False(ok)
		_, ok = r.Population("CA")
		s.False(ok)
		s.Zero(r.Len())
		s.Empty(r.All())
	})
}

func (s *RegistrySuite) TestNew() {
	s.Run("rejects duplicate code", func() {
		_, err := New([]Info{{Name: "A", Code: "X"}, {Name: "B", Code: "X"}})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects duplicate name", func() {
		_, err := New([]Info{{Name: "A", Code: "X"}, {Name: "A", Code: "Y"}})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects empty code", func() {
		_, err := New([]Info{{Name: "A"}})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects negative population", func() {
		_, err := New([]Info{{Name: "A", Code: "X", Population: pop(-1)}})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("zero population is recorded but unusable", func() {
		r, err := New([]Info{{Name: "Empty", Code: "EM", Population: pop(0)}})
		s.Require().NoError(err)
		p, ok := r.Population("EM")
		s.True(ok)
		s.Zero(p)
		info, _ := r.ByCode("EM")
		s.False(info.HasPopulation())
	})

	s.Run("copies are isolated from the registry", func() {
		r, err := New([]Info{{Name: "A", Code: "X", Population: pop(10)}})
		s.Require().NoError(err)
		all := r.All()
		*all[0].Population = 99
		p, _ := r.Population("X")
		s.Equal(int64(10), p)
	})
}
