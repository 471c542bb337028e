package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		TargetsSeeder{},
		EmployeesSeeder{},
	}
}
