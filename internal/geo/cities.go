package geo

import (
	"sort"

	"quantum-logistics-router/internal/models"
)

// Static dataset: Brazilian capitals and per-city delivery points. Each city
// carries one distribution hub (index 0) and nine reference neighborhoods
// (indices 1-9).

// City bundles a capital's hub and its neighborhoods.
type City struct {
	ID   int
	Key  string
	Name string
	// Locations[0] is the hub; Locations[1:] are the neighborhoods.
	Locations []models.Location
}

// Hub returns the city's distribution hub.
func (c *City) Hub() models.Location { return c.Locations[0] }

// Neighborhoods returns the city's non-hub points.
func (c *City) Neighborhoods() []models.Location { return c.Locations[1:] }

// SaoPauloTestLocations is a small fixed point set used by the demo endpoint.
var SaoPauloTestLocations = []models.Location{
	{ID: 0, Name: "Depósito Centro", Lat: -23.5505, Lng: -46.6333},
	{ID: 1, Name: "Pinheiros", Lat: -23.5629, Lng: -46.6825},
	{ID: 2, Name: "Vila Mariana", Lat: -23.5880, Lng: -46.6386},
	{ID: 3, Name: "Mooca", Lat: -23.5489, Lng: -46.5997},
	{ID: 4, Name: "Santana", Lat: -23.5050, Lng: -46.6289},
	{ID: 5, Name: "Tatuapé", Lat: -23.5403, Lng: -46.5768},
	{ID: 6, Name: "Butantã", Lat: -23.5730, Lng: -46.7206},
	{ID: 7, Name: "Ipiranga", Lat: -23.5944, Lng: -46.6070},
}

// BrazilCapitalHubs lists the central hub of each supported capital,
// for inter-municipal routing.
var BrazilCapitalHubs = []models.Location{
	{ID: 0, Name: "Brasília (DF)", Lat: -15.7939, Lng: -47.8828},
	{ID: 1, Name: "São Paulo (SP)", Lat: -23.5505, Lng: -46.6333},
	{ID: 2, Name: "Rio de Janeiro (RJ)", Lat: -22.9068, Lng: -43.1729},
	{ID: 3, Name: "Belo Horizonte (MG)", Lat: -19.9167, Lng: -43.9345},
	{ID: 4, Name: "Salvador (BA)", Lat: -12.9714, Lng: -38.5014},
	{ID: 5, Name: "Recife (PE)", Lat: -8.0476, Lng: -34.8770},
	{ID: 6, Name: "Fortaleza (CE)", Lat: -3.7319, Lng: -38.5267},
	{ID: 7, Name: "Curitiba (PR)", Lat: -25.4284, Lng: -49.2733},
	{ID: 8, Name: "Porto Alegre (RS)", Lat: -30.0346, Lng: -51.2177},
	{ID: 9, Name: "Manaus (AM)", Lat: -3.1190, Lng: -60.0217},
}

// Cities maps a city key to its hub + neighborhood dataset.
var Cities = map[string]*City{
	"brasilia": {ID: 0, Key: "brasilia", Name: "Brasília (DF)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Brasília", Lat: -15.7939, Lng: -47.8828},
		{ID: 1, Name: "Asa Sul", Lat: -15.8267, Lng: -47.9218},
		{ID: 2, Name: "Asa Norte", Lat: -15.7801, Lng: -47.8919},
		{ID: 3, Name: "Lago Sul", Lat: -15.8350, Lng: -47.8569},
		{ID: 4, Name: "Taguatinga", Lat: -15.8389, Lng: -48.0439},
		{ID: 5, Name: "Ceilândia", Lat: -15.8170, Lng: -48.1078},
		{ID: 6, Name: "Samambaia", Lat: -15.8758, Lng: -48.0944},
		{ID: 7, Name: "Águas Claras", Lat: -15.8350, Lng: -48.0267},
		{ID: 8, Name: "Gama", Lat: -16.0141, Lng: -48.0653},
		{ID: 9, Name: "Sobradinho", Lat: -15.6528, Lng: -47.7861},
	}},
	"sao_paulo": {ID: 1, Key: "sao_paulo", Name: "São Paulo (SP)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central São Paulo", Lat: -23.5505, Lng: -46.6333},
		{ID: 1, Name: "Pinheiros", Lat: -23.5629, Lng: -46.6825},
		{ID: 2, Name: "Vila Mariana", Lat: -23.5880, Lng: -46.6386},
		{ID: 3, Name: "Mooca", Lat: -23.5489, Lng: -46.5997},
		{ID: 4, Name: "Santana", Lat: -23.5050, Lng: -46.6289},
		{ID: 5, Name: "Tatuapé", Lat: -23.5403, Lng: -46.5768},
		{ID: 6, Name: "Butantã", Lat: -23.5730, Lng: -46.7206},
		{ID: 7, Name: "Ipiranga", Lat: -23.5944, Lng: -46.6070},
		{ID: 8, Name: "Lapa", Lat: -23.5279, Lng: -46.7011},
		{ID: 9, Name: "Itaquera", Lat: -23.5408, Lng: -46.4558},
	}},
	"rio_de_janeiro": {ID: 2, Key: "rio_de_janeiro", Name: "Rio de Janeiro (RJ)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Rio", Lat: -22.9068, Lng: -43.1729},
		{ID: 1, Name: "Copacabana", Lat: -22.9711, Lng: -43.1822},
		{ID: 2, Name: "Ipanema", Lat: -22.9838, Lng: -43.2096},
		{ID: 3, Name: "Botafogo", Lat: -22.9519, Lng: -43.1824},
		{ID: 4, Name: "Tijuca", Lat: -22.9256, Lng: -43.2450},
		{ID: 5, Name: "Barra da Tijuca", Lat: -23.0045, Lng: -43.3647},
		{ID: 6, Name: "Jacarepaguá", Lat: -22.9247, Lng: -43.3614},
		{ID: 7, Name: "Campo Grande", Lat: -22.9036, Lng: -43.5617},
		{ID: 8, Name: "Méier", Lat: -22.9025, Lng: -43.2781},
		{ID: 9, Name: "Bangu", Lat: -22.8719, Lng: -43.4644},
	}},
	"belo_horizonte": {ID: 3, Key: "belo_horizonte", Name: "Belo Horizonte (MG)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central BH", Lat: -19.9167, Lng: -43.9345},
		{ID: 1, Name: "Savassi", Lat: -19.9386, Lng: -43.9353},
		{ID: 2, Name: "Pampulha", Lat: -19.8511, Lng: -43.9719},
		{ID: 3, Name: "Barreiro", Lat: -19.9881, Lng: -44.0311},
		{ID: 4, Name: "Venda Nova", Lat: -19.8139, Lng: -43.9625},
		{ID: 5, Name: "Contagem Centro", Lat: -19.9319, Lng: -44.0539},
		{ID: 6, Name: "Betim", Lat: -19.9678, Lng: -44.1986},
		{ID: 7, Name: "Santa Efigênia", Lat: -19.9264, Lng: -43.9467},
		{ID: 8, Name: "Funcionários", Lat: -19.9369, Lng: -43.9269},
		{ID: 9, Name: "Nova Lima", Lat: -19.9856, Lng: -43.8469},
	}},
	"salvador": {ID: 4, Key: "salvador", Name: "Salvador (BA)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Salvador", Lat: -12.9714, Lng: -38.5014},
		{ID: 1, Name: "Barra", Lat: -13.0094, Lng: -38.5328},
		{ID: 2, Name: "Pituba", Lat: -13.0047, Lng: -38.4536},
		{ID: 3, Name: "Itapuã", Lat: -12.9497, Lng: -38.3664},
		{ID: 4, Name: "Cajazeiras", Lat: -12.9400, Lng: -38.5569},
		{ID: 5, Name: "Brotas", Lat: -12.9975, Lng: -38.5089},
		{ID: 6, Name: "Cabula", Lat: -12.9597, Lng: -38.4697},
		{ID: 7, Name: "Liberdade", Lat: -12.9450, Lng: -38.5158},
		{ID: 8, Name: "Periperi", Lat: -12.8986, Lng: -38.4497},
		{ID: 9, Name: "Paripe", Lat: -12.8058, Lng: -38.4572},
	}},
	"recife": {ID: 5, Key: "recife", Name: "Recife (PE)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Recife", Lat: -8.0476, Lng: -34.8770},
		{ID: 1, Name: "Boa Viagem", Lat: -8.1300, Lng: -34.9019},
		{ID: 2, Name: "Casa Amarela", Lat: -8.0261, Lng: -34.9169},
		{ID: 3, Name: "Espinheiro", Lat: -8.0394, Lng: -34.8892},
		{ID: 4, Name: "Graças", Lat: -8.0411, Lng: -34.8972},
		{ID: 5, Name: "Várzea", Lat: -8.0417, Lng: -34.9561},
		{ID: 6, Name: "Afogados", Lat: -8.0631, Lng: -34.9236},
		{ID: 7, Name: "Torre", Lat: -8.0522, Lng: -34.9036},
		{ID: 8, Name: "Jardim São Paulo", Lat: -8.0233, Lng: -34.9464},
		{ID: 9, Name: "Iputinga", Lat: -8.0458, Lng: -34.9461},
	}},
	"fortaleza": {ID: 6, Key: "fortaleza", Name: "Fortaleza (CE)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Fortaleza", Lat: -3.7319, Lng: -38.5267},
		{ID: 1, Name: "Aldeota", Lat: -3.7328, Lng: -38.5011},
		{ID: 2, Name: "Meireles", Lat: -3.7275, Lng: -38.4931},
		{ID: 3, Name: "Messejana", Lat: -3.8308, Lng: -38.4908},
		{ID: 4, Name: "Maracanaú", Lat: -3.8769, Lng: -38.6256},
		{ID: 5, Name: "Parangaba", Lat: -3.7781, Lng: -38.5683},
		{ID: 6, Name: "Barra do Ceará", Lat: -3.6942, Lng: -38.5758},
		{ID: 7, Name: "Montese", Lat: -3.7661, Lng: -38.5461},
		{ID: 8, Name: "Dendê", Lat: -3.8042, Lng: -38.5281},
		{ID: 9, Name: "Antônio Bezerra", Lat: -3.7342, Lng: -38.5781},
	}},
	"curitiba": {ID: 7, Key: "curitiba", Name: "Curitiba (PR)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Curitiba", Lat: -25.4284, Lng: -49.2733},
		{ID: 1, Name: "Batel", Lat: -25.4414, Lng: -49.2831},
		{ID: 2, Name: "Água Verde", Lat: -25.4464, Lng: -49.2544},
		{ID: 3, Name: "Portão", Lat: -25.4856, Lng: -49.2925},
		{ID: 4, Name: "Boqueirão", Lat: -25.5047, Lng: -49.2372},
		{ID: 5, Name: "CIC (Cidade Industrial)", Lat: -25.5247, Lng: -49.3358},
		{ID: 6, Name: "Santa Felicidade", Lat: -25.4078, Lng: -49.3336},
		{ID: 7, Name: "Capão Raso", Lat: -25.5375, Lng: -49.2811},
		{ID: 8, Name: "Cajuru", Lat: -25.4619, Lng: -49.2211},
		{ID: 9, Name: "Pinheirinho", Lat: -25.5506, Lng: -49.2556},
	}},
	"porto_alegre": {ID: 8, Key: "porto_alegre", Name: "Porto Alegre (RS)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Porto Alegre", Lat: -30.0346, Lng: -51.2177},
		{ID: 1, Name: "Moinhos de Vento", Lat: -30.0286, Lng: -51.2078},
		{ID: 2, Name: "Bom Fim", Lat: -30.0336, Lng: -51.2144},
		{ID: 3, Name: "Menino Deus", Lat: -30.0586, Lng: -51.2258},
		{ID: 4, Name: "Restinga", Lat: -30.1153, Lng: -51.1569},
		{ID: 5, Name: "Zona Norte", Lat: -29.9869, Lng: -51.1578},
		{ID: 6, Name: "Cavalhada", Lat: -30.1042, Lng: -51.2311},
		{ID: 7, Name: "Tristeza", Lat: -30.1172, Lng: -51.2425},
		{ID: 8, Name: "Petrópolis", Lat: -30.0528, Lng: -51.1808},
		{ID: 9, Name: "Sarandi", Lat: -29.9917, Lng: -51.1464},
	}},
	"manaus": {ID: 9, Key: "manaus", Name: "Manaus (AM)", Locations: []models.Location{
		{ID: 0, Name: "Hub Central Manaus", Lat: -3.1190, Lng: -60.0217},
		{ID: 1, Name: "Adrianópolis", Lat: -3.0808, Lng: -60.0258},
		{ID: 2, Name: "Vieiralves", Lat: -3.1008, Lng: -60.0489},
		{ID: 3, Name: "Flores", Lat: -3.1047, Lng: -60.0144},
		{ID: 4, Name: "Aleixo", Lat: -3.1144, Lng: -59.9908},
		{ID: 5, Name: "Cidade Nova", Lat: -2.9986, Lng: -60.0467},
		{ID: 6, Name: "Compensa", Lat: -3.1158, Lng: -60.0700},
		{ID: 7, Name: "São Jorge", Lat: -3.0719, Lng: -60.0400},
		{ID: 8, Name: "Japiim", Lat: -3.1378, Lng: -60.0056},
		{ID: 9, Name: "Coroado", Lat: -3.0578, Lng: -60.0569},
	}},
}

// CityList returns all cities ordered by ID for stable API output.
func CityList() []*City {
	list := make([]*City, 0, len(Cities))
	for _, c := range Cities {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
