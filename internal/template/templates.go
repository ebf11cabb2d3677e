package template

import "github.com/aldsworth/ssot/internal/memory"

// Templates maps generator categories to their memory scaffolds.
// Placeholders use {{name}} syntax; every placeholder must have a default in
// Defaults or an override at render time. Archive memories are produced by
// retiring existing documents, so there is no archive template.
var Templates = map[memory.Category]string{
	memory.CategorySSOT: `---
title: {{title}}
version: 0.1.0
updated: {{timestamp}}
scope: {{scope}}
category: {{category}}
subcategory: {{subcategory}}
domain: [{{domain}}]
applicability: {{applicability}}
changelog:
  - 0.1.0 ({{date}}): Initial creation.
---

## Purpose
{{purpose}}

## Overview
{{overview}}

## Key Components

### Component 1
Description...

### Component 2
Description...

## Current State

### What Works
- Item 1
- Item 2

### Known Limitations
- Limitation 1
- Limitation 2

## Related SSOTs
- ` + "`related_ssot_1.md`" + ` - Description
- ` + "`related_ssot_2.md`" + ` - Description

## Next Steps
- [ ] Task 1
- [ ] Task 2

## References
- Internal doc references
- External resources
`,

	memory.CategoryPattern: `---
title: {{title}}
version: 0.1.0
updated: {{timestamp}}
scope: {{scope}}
category: pattern
subcategory: {{subcategory}}
domain: [{{domain}}]
applicability: {{applicability}}
changelog:
  - 0.1.0 ({{date}}): Initial creation.
---

## Purpose
{{purpose}}

## Pattern Description
{{description}}

## When to Apply
- Scenario 1
- Scenario 2

## Implementation

### Approach
Steps to implement this pattern...

### Example
` + "```" + `
# Code example
` + "```" + `

## Trade-offs

### Benefits
- Benefit 1
- Benefit 2

### Costs
- Cost 1
- Cost 2

## Related Patterns
- ` + "`related_pattern_1.md`" + `
- ` + "`related_pattern_2.md`" + `
`,

	memory.CategoryReference: `---
title: {{title}}
scope: {{scope}}
category: reference
subcategory: {{subcategory}}
domain: [{{domain}}]
---

## Purpose
{{purpose}}

## Quick Reference

### Category 1
| Item | Description | Example |
|------|-------------|---------|
| Item1 | Desc | ` + "`example`" + ` |

### Category 2
Details...

## Detailed Documentation

### Section 1
Content...

### Section 2
Content...

## Examples

### Example 1: {{example_name}}
` + "```" + `
Code or configuration example
` + "```" + `

### Example 2: {{example_name}}
` + "```" + `
Code or configuration example
` + "```" + `

## Additional Resources
- Link 1
- Link 2
`,

	memory.CategoryPlan: `---
title: {{title}}
version: 0.1.0
updated: {{timestamp}}
scope: {{scope}}
category: plan
subcategory: {{subcategory}}
status: draft
changelog:
  - 0.1.0 ({{date}}): Initial plan creation.
---

## Objective
{{objective}}

## Background
{{background}}

## Proposed Approach

### Phase 1: {{phase_name}}
- Task 1
- Task 2

### Phase 2: {{phase_name}}
- Task 1
- Task 2

## Success Criteria
- [ ] Criterion 1
- [ ] Criterion 2

## Risks & Mitigations
| Risk | Impact | Mitigation |
|------|--------|------------|
| Risk 1 | High | Mitigation strategy |

## Timeline
- Phase 1: Dates
- Phase 2: Dates

## Related Docs
- ` + "`related_ssot.md`" + `
- ` + "`related_pattern.md`" + `
`,
}

// Categories returns the generator categories in a stable order.
func Categories() []memory.Category {
	return []memory.Category{
		memory.CategorySSOT,
		memory.CategoryPattern,
		memory.CategoryReference,
		memory.CategoryPlan,
	}
}
