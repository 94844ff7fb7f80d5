package mapping

// SampleMappings are inserted into an empty store on start.
func SampleMappings() []NewMapping {
	ptr := func(s string) *string { return &s }
	rel := func(i int) *int { return &i }

	return []NewMapping{
		{SourceTableID: 1, SourceColumnID: 1, TargetTableID: 1, TargetColumnID: 1, ReleaseID: rel(1),
			JiraTicket: ptr("STTM-101"), Status: ptr("Released"), Description: ptr("Map customer ID to customer key")},
		{SourceTableID: 1, SourceColumnID: 2, TargetTableID: 1, TargetColumnID: 2, ReleaseID: rel(1),
			JiraTicket: ptr("STTM-102"), Status: ptr("Released"), Description: ptr("Map customer name to customer name")},
		{SourceTableID: 2, SourceColumnID: 4, TargetTableID: 2, TargetColumnID: 4, ReleaseID: rel(2),
			JiraTicket: ptr("STTM-201"), Status: ptr("Released"), Description: ptr("Map product ID to product key")},
		{SourceTableID: 3, SourceColumnID: 8, TargetTableID: 3, TargetColumnID: 8, ReleaseID: rel(3),
			JiraTicket: ptr("STTM-301"), Status: ptr("Draft"), Description: ptr("Map order customer ID to customer key")},
	}
}
