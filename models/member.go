package models

// TeamMember je denormalizovana kopija korisnika unutar tima ili projekta.
// Role, Expertise i Workload postoje samo u kontekstu članstva.
type TeamMember struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Email     string   `bson:"email" json:"email"`
	Avatar    string   `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Initials  string   `bson:"initials" json:"initials"`
	Role      TeamRole `bson:"role,omitempty" json:"role,omitempty"`
	Expertise string   `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Workload  int      `bson:"workload" json:"workload"`
}
