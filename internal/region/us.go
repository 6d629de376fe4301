package region

// usStates is the 2010 census table for US states, the District of Columbia
// and inhabited territories. Territories other than Puerto Rico carry no
// population.
var usStates = []Info{
	{Name: "Alabama", Code: "AL", Population: pop(4780131)},
	{Name: "Alaska", Code: "AK", Population: pop(710249)},
	{Name: "American Samoa", Code: "AS"},
	{Name: "Arizona", Code: "AZ", Population: pop(6392301)},
	{Name: "Arkansas", Code: "AR", Population: pop(2916025)},
	{Name: "California", Code: "CA", Population: pop(37254522)},
	{Name: "Colorado", Code: "CO", Population: pop(5029324)},
	{Name: "Connecticut", Code: "CT", Population: pop(3574114)},
	{Name: "Delaware", Code: "DE", Population: pop(897936)},
	{Name: "District of Columbia", Code: "DC", Population: pop(601766)},
	{Name: "Federated States Of Micronesia", Code: "FM"},
	{Name: "Florida", Code: "FL", Population: pop(18804592)},
	{Name: "Georgia", Code: "GA", Population: pop(9688680)},
	{Name: "Guam", Code: "GU"},
	{Name: "Hawaii", Code: "HI", Population: pop(1360301)},
	{Name: "Idaho", Code: "ID", Population: pop(1567650)},
	{Name: "Illinois", Code: "IL", Population: pop(12831574)},
	{Name: "Indiana", Code: "IN", Population: pop(6484136)},
	{Name: "Iowa", Code: "IA", Population: pop(3046869)},
	{Name: "Kansas", Code: "KS", Population: pop(2853129)},
	{Name: "Kentucky", Code: "KY", Population: pop(4339344)},
	{Name: "Louisiana", Code: "LA", Population: pop(4533479)},
	{Name: "Maine", Code: "ME", Population: pop(1328364)},
	{Name: "Marshall Islands", Code: "MH"},
	{Name: "Maryland", Code: "MD", Population: pop(5773786)},
	{Name: "Massachusetts", Code: "MA", Population: pop(6547813)},
	{Name: "Michigan", Code: "MI", Population: pop(9884129)},
	{Name: "Minnesota", Code: "MN", Population: pop(5303924)},
	{Name: "Mississippi", Code: "MS", Population: pop(2968103)},
	{Name: "Missouri", Code: "MO", Population: pop(5988928)},
	{Name: "Montana", Code: "MT", Population: pop(989414)},
	{Name: "Nebraska", Code: "NE", Population: pop(1826334)},
	{Name: "Nevada", Code: "NV", Population: pop(2700691)},
	{Name: "New Hampshire", Code: "NH", Population: pop(1316461)},
	{Name: "New Jersey", Code: "NJ", Population: pop(8791953)},
	{Name: "New Mexico", Code: "NM", Population: pop(2059198)},
	{Name: "New York", Code: "NY", Population: pop(19378110)},
	{Name: "North Carolina", Code: "NC", Population: pop(9535688)},
	{Name: "North Dakota", Code: "ND", Population: pop(672591)},
	{Name: "Northern Mariana Islands", Code: "MP"},
	{Name: "Ohio", Code: "OH", Population: pop(11536727)},
	{Name: "Oklahoma", Code: "OK", Population: pop(3751615)},
	{Name: "Oregon", Code: "OR", Population: pop(3831072)},
	{Name: "Palau", Code: "PW"},
	{Name: "Pennsylvania", Code: "PA", Population: pop(12702857)},
	{Name: "Puerto Rico", Code: "PR", Population: pop(3726157)},
	{Name: "Rhode Island", Code: "RI", Population: pop(1052940)},
	{Name: "South Carolina", Code: "SC", Population: pop(4625410)},
	{Name: "South Dakota", Code: "SD", Population: pop(814195)},
	{Name: "Tennessee", Code: "TN", Population: pop(6346298)},
	{Name: "Texas", Code: "TX", Population: pop(25146100)},
	{Name: "Utah", Code: "UT", Population: pop(2763888)},
	{Name: "Vermont", Code: "VT", Population: pop(625741)},
	{Name: "Virgin Islands", Code: "VI"},
	{Name: "Virginia", Code: "VA", Population: pop(8001041)},
	{Name: "Washington", Code: "WA", Population: pop(6724545)},
	{Name: "West Virginia", Code: "WV", Population: pop(1853011)},
	{Name: "Wisconsin", Code: "WI", Population: pop(5687289)},
	{Name: "Wyoming", Code: "WY", Population: pop(563767)},
}

func pop(n int64) *int64 { return &n }

// Default returns the US registry used by the loan map.
func Default() *Registry {
	r, err := New(usStates)
	if err != nil {
		panic("region: invalid built-in table: " + err.Error())
	}
	return r
}
