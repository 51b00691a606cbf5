package rubric

// universalCheck appears in every criterion: concrete details beat vague talk.
func universalCheck() Component {
	return Component{Name: "Universal Check", Points: 1, Guide: "1=2+ concrete details | 0=Vague"}
}

// Categories returns the full 32-criterion handover rubric (raw maximum 180).
func Categories() []Category {
	return []Category{
		{
			Name: "Customer",
			Criteria: []Criterion{
				{
					Name:        "Customer Background Details",
					MaxPoints:   6,
					Description: "Who is the customer? Prior relationship? Any specific concerns from past?",
					Components: []Component{
						{Name: "Customer Identity", Points: 2, Guide: "2=Customer clearly named | 1=Vague | 0=Not identified"},
						{Name: "Relationship History", Points: 2, Guide: "2=Specific past work | 1=General mention | 0=No info"},
						{Name: "Concerns", Points: 1, Guide: "1=Specific concerns noted | 0=No concerns"},
						universalCheck(),
					},
				},
			},
		},
		{
			Name: "Timeline",
			Criteria: []Criterion{
				{
					Name:        "Project Timeline Analysis",
					MaxPoints:   6,
					Description: "Start/end dates? Anticipated delays? Flexibility for unexpected changes?",
					Components: []Component{
						{Name: "Start Info", Points: 1, Guide: "1=Clear start date | 0=Missing/vague"},
						{Name: "Completion Info", Points: 1, Guide: "1=Clear completion date | 0=Missing/vague"},
						{Name: "Duration/Resources", Points: 3, Guide: "3=All details | 2=Two elements | 1=One element | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Project Milestones",
					MaxPoints:   6,
					Description: "Key dates/events identified and communicated?",
					Components: []Component{
						{Name: "Milestones", Points: 2, Guide: "2=All with dates | 1=Some | 0=None"},
						{Name: "Integration", Points: 2, Guide: "2=Schedule integrated | 1=Basic | 0=None"},
						{Name: "Communication", Points: 1, Guide: "1=Tracking plan | 0=None"},
						universalCheck(),
					},
				},
			},
		},
		{
			Name: "Material",
			Criteria: []Criterion{
				{
					Name:        "Material Sourcing & Availability",
					MaxPoints:   5,
					Description: "Key materials required? Lead times? Potential impact of delay?",
					Components: []Component{
						{Name: "Material Assessment", Points: 2, Guide: "2=Comprehensive analysis | 1=Basic ID | 0=Not identified"},
						{Name: "Lead Times", Points: 1, Guide: "1=Clear lead times | 0=No info"},
						{Name: "Mitigation", Points: 1, Guide: "1=Actions mentioned | 0=No strategies"},
						universalCheck(),
					},
				},
				{
					Name:        "Procurement Updates",
					MaxPoints:   5,
					Description: "Are current procurement statuses shared and tracked?",
					Components: []Component{
						{Name: "Status", Points: 2, Guide: "2=Detailed status/timelines | 1=General | 0=None"},
						{Name: "Updates", Points: 1, Guide: "1=Regular process | 0=None"},
						{Name: "Risks", Points: 1, Guide: "1=Risks identified | 0=None"},
						universalCheck(),
					},
				},
			},
		},
		{
			Name: "Safety",
			Criteria: []Criterion{
				{
					Name:        "Site Conditions",
					MaxPoints:   6,
					Description: "Any access issues, weather challenges, or hazards noted?",
					Components: []Component{
						{Name: "Risk ID", Points: 2, Guide: "2=Multiple risks | 1=One risk | 0=No risks"},
						{Name: "Assessment", Points: 1, Guide: "1=Risk level described | 0=No assessment"},
						{Name: "Mitigation", Points: 2, Guide: "2=Specific actions | 1=General | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Safety Considerations",
					MaxPoints:   6,
					Description: "Are safety protocols, risks, and responsibilities discussed?",
					Components: []Component{
						{Name: "Risk ID", Points: 2, Guide: "2=Multiple safety risks | 1=One risk | 0=No risks"},
						{Name: "Communication", Points: 1, Guide: "1=Protocols communicated | 0=No plan"},
						{Name: "Mitigation", Points: 2, Guide: "2=Specific measures | 1=General | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Risk Management",
					MaxPoints:   6,
					Description: "Are project risks identified and mitigations in place?",
					Components: []Component{
						{Name: "Risk ID", Points: 2, Guide: "2=Multiple risks | 1=One risk | 0=None"},
						{Name: "Assessment", Points: 1, Guide: "1=Impact assessed | 0=None"},
						{Name: "Mitigation", Points: 2, Guide: "2=Specific strategies | 1=General | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Work Area Protection",
					MaxPoints:   6,
					Description: "Are barricades, signage, temporary walls planned?",
					Components: []Component{
						{Name: "Protection", Points: 2, Guide: "2=Comprehensive plan | 1=Basic | 0=None"},
						{Name: "Signage", Points: 2, Guide: "2=Detailed plan | 1=General | 0=None"},
						{Name: "Timeline", Points: 1, Guide: "1=Implementation schedule | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Access & Egress Plans",
					MaxPoints:   6,
					Description: "How do workers/materials get in/out safely and efficiently?",
					Components: []Component{
						{Name: "Routes", Points: 2, Guide: "2=Specific safe routes | 1=General | 0=None"},
						{Name: "Material Handling", Points: 2, Guide: "2=Detailed plan | 1=Basic | 0=None"},
						{Name: "Safety", Points: 1, Guide: "1=Safety measures | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Glazing-Specific Risks",
					MaxPoints:   6,
					Description: "Are unique risks (e.g., lifting glass, storage) considered?",
					Components: []Component{
						{Name: "Risk ID", Points: 2, Guide: "2=Multiple glazing risks | 1=Some | 0=None"},
						{Name: "Protocols", Points: 2, Guide: "2=Detailed protocols | 1=Basic | 0=None"},
						{Name: "Equipment", Points: 1, Guide: "1=Specialized needs | 0=None"},
						universalCheck(),
					},
				},
			},
		},
		{
			Name: "Scope",
			Criteria: []Criterion{
				{
					Name:        "Scope of Work",
					MaxPoints:   6,
					Description: "What's included/excluded? Are all trades and tasks covered?",
					Components: []Component{
						{Name: "Scope Confirmation", Points: 2, Guide: "2=Detailed scope | 1=Basic outline | 0=Unclear"},
						{Name: "Coverage", Points: 1, Guide: "1=All trades ID | 0=Incomplete"},
						{Name: "Issues", Points: 2, Guide: "2=Comprehensive | 1=Basic | 0=None"},
						universalCheck(),
					},
				},
			},
		},
		{
			Name: "Equipment",
			Criteria: []Criterion{
				{
					Name:        "Equipment Needs",
					MaxPoints:   6,
					Description: "Special tools/lifts/scaffolding required? Who provides what?",
					Components: []Component{
						{Name: "Equipment ID", Points: 1, Guide: "1=Specific types listed | 0=Not clear"},
						{Name: "Costs", Points: 2, Guide: "2=Specific costs | 1=General | 0=None"},
						{Name: "Provider/Coord", Points: 2, Guide: "2=Clear provider/timing | 1=Partial | 0=None"},
						universalCheck(),
					},
				},
			},
		},
		{
			Name: "General",
			Criteria: []Criterion{
				{
					Name:        "Permits & Inspections",
					MaxPoints:   5,
					Description: "Which permits are required? Status of inspections?",
					Components: []Component{
						{Name: "Permits", Points: 2, Guide: "2=All permits with status | 1=Incomplete | 0=Unclear"},
						{Name: "Schedule", Points: 1, Guide: "1=Timeline provided | 0=No info"},
						{Name: "Actions", Points: 1, Guide: "1=Actions described | 0=No plan"},
						universalCheck(),
					},
				},
				{
					Name:        "Subcontractor Coordination",
					MaxPoints:   6,
					Description: "Are subcontractors identified and scheduled?",
					Components: []Component{
						{Name: "Sub ID", Points: 2, Guide: "2=All subs by name | 1=Some | 0=Unclear"},
						{Name: "Schedule", Points: 2, Guide: "2=Detailed plan | 1=Basic | 0=None"},
						{Name: "Communication", Points: 1, Guide: "1=Method defined | 0=No plan"},
						universalCheck(),
					},
				},
				{
					Name:        "Communication Plan",
					MaxPoints:   6,
					Description: "Who's the main contact? Method/frequency of updates?",
					Components: []Component{
						{Name: "Contacts", Points: 2, Guide: "2=Clear contacts with roles | 1=Some | 0=Unclear"},
						{Name: "Methods", Points: 2, Guide: "2=Specific methods/frequency | 1=General | 0=None"},
						{Name: "Schedule", Points: 1, Guide: "1=Update schedule | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Drawing/Spec Review",
					MaxPoints:   5,
					Description: "Have relevant drawings/specs been reviewed and explained?",
					Components: []Component{
						{Name: "Review", Points: 2, Guide: "2=All documents reviewed | 1=Some | 0=None"},
						{Name: "Understanding", Points: 1, Guide: "1=Confirmed with team | 0=No confirmation"},
						{Name: "Actions", Points: 1, Guide: "1=Actions identified | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Change Order Procedure",
					MaxPoints:   6,
					Description: "Is the change process understood? Forms, approvals, pricing?",
					Components: []Component{
						{Name: "Process", Points: 2, Guide: "2=Complete process | 1=Basic | 0=None"},
						{Name: "Approvals", Points: 2, Guide: "2=Clear hierarchy | 1=Some info | 0=Unclear"},
						{Name: "Pricing", Points: 1, Guide: "1=Method explained | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Budget/Cost Tracking",
					MaxPoints:   6,
					Description: "Is the budget reviewed and roles defined for tracking costs? Do we have an NTE?",
					Components: []Component{
						{Name: "Budget", Points: 2, Guide: "2=Specific amounts/NTE | 1=General | 0=None"},
						{Name: "Roles", Points: 2, Guide: "2=Clear responsibilities | 1=Some | 0=Unclear"},
						{Name: "Process", Points: 1, Guide: "1=Monitoring defined | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Quality Control Measures",
					MaxPoints:   6,
					Description: "Inspections, punch list process, workmanship standards?",
					Components: []Component{
						{Name: "Inspections", Points: 2, Guide: "2=Detailed schedule | 1=Basic | 0=None"},
						{Name: "Standards", Points: 2, Guide: "2=Specific standards | 1=General | 0=None"},
						{Name: "Punch List", Points: 1, Guide: "1=Clear process | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Emergency Contacts",
					MaxPoints:   5,
					Description: "Who to call for major issues? Is this list documented/shared?",
					Components: []Component{
						{Name: "Contacts", Points: 2, Guide: "2=Complete list | 1=Some | 0=None"},
						{Name: "Documentation", Points: 1, Guide: "1=Documented/accessible | 0=None"},
						{Name: "Protocol", Points: 1, Guide: "1=Communication plan | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Storage/Logistics",
					MaxPoints:   5,
					Description: "Where are materials stored? Delivery coordination?",
					Components: []Component{
						{Name: "Storage", Points: 2, Guide: "2=Specific locations/security | 1=General | 0=None"},
						{Name: "Delivery", Points: 1, Guide: "1=Schedule/coordination | 0=None"},
						{Name: "Access", Points: 1, Guide: "1=Access procedures | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Insurance & Bonding",
					MaxPoints:   5,
					Description: "Confirm coverage and any specific policy limitations?",
					Components: []Component{
						{Name: "Coverage", Points: 2, Guide: "2=All requirements confirmed | 1=Basic | 0=None"},
						{Name: "Limitations", Points: 1, Guide: "1=Limitations noted | 0=None"},
						{Name: "Compliance", Points: 1, Guide: "1=Actions for compliance | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Legal/Contract Requirements",
					MaxPoints:   6,
					Description: "Are contract obligations highlighted and risks reviewed?",
					Components: []Component{
						{Name: "Obligations", Points: 2, Guide: "2=Specific obligations | 1=General | 0=None"},
						{Name: "Risks", Points: 2, Guide: "2=Analyzed with mitigation | 1=Basic | 0=None"},
						{Name: "Compliance", Points: 1, Guide: "1=Compliance plan | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Neighbor/Adjacent Property Coordination",
					MaxPoints:   5,
					Description: "Have neighbors been notified? Special coordination needed?",
					Components: []Component{
						{Name: "Notification", Points: 2, Guide: "2=Properly notified | 1=Some | 0=None"},
						{Name: "Coordination", Points: 1, Guide: "1=Requirements identified | 0=None"},
						{Name: "Communication", Points: 1, Guide: "1=Ongoing plan | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Roofing-Specific Hazards",
					MaxPoints:   6,
					Description: "Are fall protection, staging, and weather exposure addressed?",
					Components: []Component{
						{Name: "Fall Protection", Points: 2, Guide: "2=Comprehensive plan | 1=Basic | 0=None"},
						{Name: "Staging", Points: 2, Guide: "2=Detailed plan | 1=Basic | 0=None"},
						{Name: "Weather", Points: 1, Guide: "1=Risks addressed | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Debrief with Outgoing Team",
					MaxPoints:   6,
					Description: "Has the outgoing crew/team been debriefed for issues or lessons learned?",
					Components: []Component{
						{Name: "Debrief", Points: 2, Guide: "2=Comprehensive with docs | 1=Basic | 0=None"},
						{Name: "Issues", Points: 2, Guide: "2=Specific issues documented | 1=Some | 0=None"},
						{Name: "Transfer", Points: 1, Guide: "1=Knowledge transferred | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Client Communication Plan",
					MaxPoints:   6,
					Description: "How and when is the client updated?",
					Components: []Component{
						{Name: "Schedule", Points: 2, Guide: "2=Specific schedule | 1=General | 0=None"},
						{Name: "Contacts", Points: 2, Guide: "2=Primary/backup contacts | 1=Some | 0=None"},
						{Name: "Content", Points: 1, Guide: "1=Content defined | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Escalation Pathway",
					MaxPoints:   5,
					Description: "When and how are issues escalated?",
					Components: []Component{
						{Name: "Triggers", Points: 2, Guide: "2=Clear triggers | 1=Some | 0=None"},
						{Name: "Process", Points: 1, Guide: "1=Step-by-step | 0=None"},
						{Name: "Contacts", Points: 1, Guide: "1=Contact chain | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Temporary Systems",
					MaxPoints:   5,
					Description: "Are any temp power, HVAC, drainage setups explained?",
					Components: []Component{
						{Name: "Requirements", Points: 2, Guide: "2=All systems with specs | 1=Some | 0=None"},
						{Name: "Installation", Points: 1, Guide: "1=Timeline/responsibility | 0=None"},
						{Name: "Coordination", Points: 1, Guide: "1=Trade coordination | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Conflict Resolution Strategy",
					MaxPoints:   5,
					Description: "Are conflicts resolved via defined process or chain of command?",
					Components: []Component{
						{Name: "Process", Points: 2, Guide: "2=Clear process/steps | 1=Basic | 0=None"},
						{Name: "Authority", Points: 1, Guide: "1=Chain of command | 0=None"},
						{Name: "Documentation", Points: 1, Guide: "1=Tracking process | 0=None"},
						universalCheck(),
					},
				},
				{
					Name:        "Post-Handoff Follow-Up",
					MaxPoints:   5,
					Description: "Is there a scheduled check-in after handoff?",
					Components: []Component{
						{Name: "Schedule", Points: 2, Guide: "2=Specific meetings/agenda | 1=General | 0=None"},
						{Name: "Responsibility", Points: 1, Guide: "1=Clear responsibility | 0=None"},
						{Name: "Metrics", Points: 1, Guide: "1=Success criteria | 0=None"},
						universalCheck(),
					},
				},
			},
		},
	}
}

// CriterionCount returns the number of criteria across all categories
func CriterionCount() int {
	count := 0
	for _, cat := range Categories() {
		count += len(cat.Criteria)
	}
	return count
}
