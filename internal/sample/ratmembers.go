package sample

// RatMember is reference data for the internal relationship/account
// owners assigned to partners, SPIs and sitreps.
type RatMember struct {
	Name       string
	Role       string
	Expertise  string
	Department string
}

var ratMemberCatalog = []RatMember{
	{Name: "Sarah Johnson", Role: "Director", Expertise: "Retail Operations", Department: "airplanes"},
	{Name: "Michael Chen", Role: "Senior Manager", Expertise: "Cloud Architecture", Department: "it"},
	{Name: "Emily Rodriguez", Role: "Senior Manager", Expertise: "Product Innovation", Department: "techlab"},
	{Name: "David Kim", Role: "Senior Manager", Expertise: "Enterprise Software", Department: "it"},
	{Name: "James Wilson", Role: "Tech Lead", Expertise: "AI/ML", Department: "space"},
	{Name: "Maria Garcia", Role: "Tech Lead", Expertise: "Data Science", Department: "energy"},
	{Name: "Robert Taylor", Role: "Tech Lead", Expertise: "Systems Integration", Department: "helicopters"},
}

// RatMembers returns the RAT member reference catalogue.
func RatMembers() []RatMember {
	out := make([]RatMember, len(ratMemberCatalog))
	copy(out, ratMemberCatalog)
	return out
}

// ratMember deterministically assigns a RAT member by index.
func ratMember(i int) string {
	return ratMemberCatalog[i%len(ratMemberCatalog)].Name
}
