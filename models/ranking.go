package models

// DefaultAvatar é usado quando o usuário não possui imagem de perfil.
const DefaultAvatar = "/default-avatar.png"

// RankingUser é a projeção de leitura de um User dentro do grupo, com a
// posição 1-based. Nunca é persistida.
type RankingUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Score    int    `json:"score"`
	Position int    `json:"position"`
}

// RankUsers projeta usuários já ordenados (score decrescente) em entradas de
// ranking com posição 1-based e avatar padrão quando não há imagem.
func RankUsers(users []User) []RankingUser {
	ranking := make([]RankingUser, 0, len(users))
	for i, user := range users {
		image := user.Image
		if image == "" {
			image = DefaultAvatar
		}
		ranking = append(ranking, RankingUser{
			ID:       user.ID,
			Name:     user.Name,
			Image:    image,
			Score:    user.Score,
			Position: i + 1,
		})
	}
	return ranking
}
